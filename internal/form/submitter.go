package form

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"cadastro_api/internal/dto/request"

	"go.uber.org/zap"
)

// DefaultEndpoint is where the page posts registrations.
const DefaultEndpoint = "http://localhost:8080/cadastro"

// Result is how a dispatched registration settled.
// StatusCode is zero when the request never got a response.
type Result struct {
	StatusCode int
	Err        error
}

// Dispatch tracks one in-flight registration request.
type Dispatch struct {
	done   chan struct{}
	result Result
}

// Done is closed once the request settles.
func (d *Dispatch) Done() <-chan struct{} {
	return d.done
}

// Wait blocks until the request settles or ctx ends. It returns ctx.Err()
// in the latter case; the request itself keeps going.
func (d *Dispatch) Wait(ctx context.Context) (Result, error) {
	select {
	case <-d.done:
		return d.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Submitter is the submit handler of one registration form, fixed at NewSubmitter.
type Submitter struct {
	form     *Form
	endpoint string
	client   *http.Client
}

// NewSubmitter binds a handler to f. An empty endpoint means DefaultEndpoint,
// a nil client means http.DefaultClient.
func NewSubmitter(f *Form, endpoint string, client *http.Client) *Submitter {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Submitter{form: f, endpoint: endpoint, client: client}
}

// Endpoint returns the URL registrations are posted to.
func (s *Submitter) Endpoint() string {
	return s.endpoint
}

// Handle reacts to a submit event: it prevents the default action, posts the
// current values in the background and clears the inputs. It never waits for
// the server and never reports the outcome other than through the log.
func (s *Submitter) Handle(ev *SubmitEvent) *Dispatch {
	if ev != nil {
		ev.PreventDefault()
	}

	d := s.cadastrar()
	s.form.Reset()
	return d
}

// Submit fires a fresh submit event at the bound form.
func (s *Submitter) Submit() *Dispatch {
	return s.Handle(NewSubmitEvent(s.form))
}

// cadastrar snapshots the inputs, encodes them and starts the POST.
func (s *Submitter) cadastrar() *Dispatch {
	req := request.CadastroRequest{
		Nome:     s.form.Nome.Value(),
		Email:    s.form.Email.Value(),
		Telefone: s.form.Telefone.Value(),
		Senha:    s.form.Senha.Value(),
	}

	d := &Dispatch{done: make(chan struct{})}

	body, err := json.Marshal(req)
	if err != nil {
		zap.L().Error("encode cadastro request", zap.Error(err))
		d.result.Err = err
		close(d.done)
		return d
	}

	go s.post(d, body)
	return d
}

// post runs on its own goroutine, no timeout and no retry.
func (s *Submitter) post(d *Dispatch, body []byte) {
	defer close(d.done)

	httpReq, err := http.NewRequestWithContext(context.Background(), http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		zap.L().Error("cadastro request failed", zap.String("endpoint", s.endpoint), zap.Error(err))
		d.result.Err = err
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		zap.L().Error("cadastro request failed", zap.String("endpoint", s.endpoint), zap.Error(err))
		d.result.Err = err
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	d.result.StatusCode = resp.StatusCode
	zap.L().Info("cadastro response",
		zap.String("endpoint", s.endpoint),
		zap.String("status", resp.Status),
		zap.Int64("content_length", resp.ContentLength),
	)
}
