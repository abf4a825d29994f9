package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"roboadvisor/api"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/service"
	"roboadvisor/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	portfolioRepository := repository.NewPortfolioRepository()
	userRepository := repository.NewUserRepository()
	investmentRepository := repository.NewInvestmentRepository()

	suggestionService := service.NewSuggestionService(dbConn, portfolioRepository)
	investmentService := service.NewInvestmentService(dbConn, userRepository, investmentRepository)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		SuggestionService:    suggestionService,
		InvestmentService:    investmentService,
		UserRepository:       userRepository,
		ApiRequestRepository: repository.APIRequestRepositoryHandler{},
	}

	return apiHandler, nil
}
