// Command cadastro_form fills the registration form from flags and submits it once.
package main

import (
	"context"
	"flag"
	"log"

	"cadastro_api/internal/config"
	"cadastro_api/internal/form"
	"cadastro_api/internal/infrastructure/logger"

	"go.uber.org/zap"
)

func main() {
	nome := flag.String("nome", "", "value of the .nome input")
	email := flag.String("email", "", "value of the .email input")
	tel := flag.String("tel", "", "value of the .tel input")
	senha := flag.String("senha", "", "value of the .senha input")
	endpoint := flag.String("endpoint", "", "override the configured endpoint")
	configPath := flag.String("config", "", "config file, the search paths are used when empty")
	flag.Parse()

	if *configPath != "" {
		conf, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config failed: %v", err)
		}
		config.SetConfig(conf)
	}
	conf := config.GetConfig()

	if err := logger.Init(&conf.LogConfig, conf.MainConfig.AppName+"_form", conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zap.L().Sync()

	target := *endpoint
	if target == "" {
		target = conf.FormConfig.Endpoint
	}

	f := form.New()
	inputs := []struct {
		selector string
		value    string
	}{
		{form.SelectorNome, *nome},
		{form.SelectorEmail, *email},
		{form.SelectorTelefone, *tel},
		{form.SelectorSenha, *senha},
	}
	for _, in := range inputs {
		field, err := f.Field(in.selector)
		if err != nil {
			zap.L().Fatal("form input", zap.String("selector", in.selector), zap.Error(err))
		}
		field.SetValue(in.value)
	}
	submitter := form.NewSubmitter(f, target, nil)

	// the outcome is already logged by the submitter
	_, _ = submitter.Submit().Wait(context.Background())
}
