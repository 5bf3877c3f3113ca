package handlers

import (
	"blogapi/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	PostService    service.PostService
	CommentService service.CommentService
	StatusService  service.StatusService
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		UserService:    services.User,
		PostService:    services.Post,
		CommentService: services.Comment,
		StatusService:  services.Status,
		Validate:       validator.New(),
	}
}
