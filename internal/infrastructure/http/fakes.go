package httpserver

import (
	"like-service/internal/application"
	"like-service/internal/infrastructure/memory"
)

func NewInMemoryService() (*application.LikeService, *memory.Store) {
	st := memory.New()
	return application.NewLikeService(st), st
}
