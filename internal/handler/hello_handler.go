package handler

import (
	"cadastro_api/internal/dto/request"
	"cadastro_api/internal/service"

	"github.com/gin-gonic/gin"
)

// HelloHandler greeting endpoint
type HelloHandler struct {
	helloSvc service.HelloService
}

// NewHelloHandler creates the handler with its service
func NewHelloHandler(helloSvc service.HelloService) *HelloHandler {
	return &HelloHandler{helloSvc: helloSvc}
}

// Hello GET /api/hello?name=
// 200: greeting string
func (h *HelloHandler) Hello(c *gin.Context) {
	var req request.HelloRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	HandleSuccess(c, h.helloSvc.Hello(req.Name))
}
