package request

// HelloRequest GET /api/hello?name=
type HelloRequest struct {
	Name string `form:"name" binding:"required"`
}
