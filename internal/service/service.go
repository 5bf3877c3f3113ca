package service

import (
	"blogapi/internal/auth"
	"blogapi/internal/repository"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Post    PostService
	Comment CommentService
	Status  StatusService
}

func NewService(rep *repository.Repository, codec *auth.TokenCodec) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, codec),
		User:    NewUserService(rep.User),
		Post:    NewPostService(rep.Post, rep.Comment),
		Comment: NewCommentService(rep.Comment, rep.Post),
		Status:  NewStatusService(rep.Status),
	}
}
