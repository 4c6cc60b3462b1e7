package app

import (
	"context"

	authAPI "slot_backend/internal/api/auth"
	slotAPI "slot_backend/internal/api/slot"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/game/clock"
	"slot_backend/internal/middleware"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/auth_repo"
	"slot_backend/internal/repository/machine_repo"
	"slot_backend/internal/repository/spin_stats_repo"
	"slot_backend/internal/repository/user_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/auth"
	"slot_backend/internal/service/slot"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type ServiceProvider struct {
	// Игровой тактовый генератор
	clock *clock.Clock

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Slot bits
	slotCfg       config.SlotConfig
	machineRepo   repository.MachineRepository
	spinStatsRepo repository.SpinStatsRepository
	slotServ      service.SlotService
	slotHand      *slotAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Clock() *clock.Clock {
	if sp.clock == nil {
		sp.clock = clock.New()
	}
	return sp.clock
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) UserRepo() repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository()
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthRepo() repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.UserRepo())
	}
	return sp.authRepo
}

func (sp *ServiceProvider) MachineRepository() repository.MachineRepository {
	if sp.machineRepo == nil {
		sp.machineRepo = machine_repo.NewMachineRepository(sp.SlotCfg(), sp.Clock())
	}
	return sp.machineRepo
}

func (sp *ServiceProvider) SpinStatsRepository() repository.SpinStatsRepository {
	if sp.spinStatsRepo == nil {
		sp.spinStatsRepo = spin_stats_repo.NewSpinStatsRepository()
	}
	return sp.spinStatsRepo
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(sp.UserRepo(), sp.AuthRepo(), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.SlotCfg(), sp.UserRepo(), sp.MachineRepository(), sp.SpinStatsRepository())
	}
	return sp.slotServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:         sp.AuthService(),
			StartBalance: sp.SlotCfg().StartBalance(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{Serv: sp.SlotService()})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler()
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Slot endpoints: доступны только с access токеном
		slotHandler := sp.SlotHandler()
		r.Route("/slot", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Post("/spin", slotHandler.Spin)
			rr.Post("/deposit", slotHandler.Deposit)
			rr.Get("/check-data", slotHandler.CheckData)
			rr.Get("/stats", slotHandler.Stats)
			rr.Get("/stream", slotHandler.Stream(sp.SlotCfg().StreamInterval()))
		})

		sp.router = r
	}

	return sp.router
}
