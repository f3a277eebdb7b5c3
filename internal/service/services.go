package service

import (
	"log"

	"github.com/aiguilog/aiguilog/internal/cache"
	"github.com/aiguilog/aiguilog/internal/config"
	"github.com/aiguilog/aiguilog/internal/repository"
	"github.com/aiguilog/aiguilog/internal/summitdata"
)

type Services struct {
	Auth   *AuthService
	Outing *OutingService
	Summit *SummitService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, cacheClient *cache.Client) *Services {
	peaks, err := summitdata.Peaks()
	if err != nil {
		// The bundled dataset ships inside the binary; failing to parse
		// it is a build defect, not a runtime condition.
		log.Printf("ERROR [service.NewServices] bundled summit dataset unusable: %v", err)
	}

	return &Services{
		Auth:   NewAuthService(repos.User, cfg),
		Outing: NewOutingService(repos.Outing),
		Summit: NewSummitService(repos.Summit, peaks, cacheClient),
	}
}
