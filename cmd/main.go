package main

import (
	"errors"
	"net/http"
	"os"

	"api/internal/agendador"
	"api/internal/auth"
	"api/internal/config"
	"api/internal/despesafixa"
	"api/internal/despesavariavel"
	"api/internal/lembrete"
	"api/internal/logger"
	"api/internal/modelodespesa"
	"api/internal/orcamento"
	"api/internal/recebimento"
	"api/internal/usuario"
	"api/internal/utils"
	"api/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Configuração inválida: %v", err)
	}
	logger.Init(cfg)

	conn, err := db.GetDB()
	if err != nil {
		logger.Log.Fatalf("Erro ao conectar no banco: %v", err)
	}

	// AutoMigrate para todos os modelos
	for _, migrate := range []func(*gorm.DB) error{
		usuario.Migrate,
		modelodespesa.Migrate,
		lembrete.Migrate,
		despesafixa.Migrate,
		despesavariavel.Migrate,
		recebimento.Migrate,
		orcamento.Migrate,
	} {
		if err := migrate(conn); err != nil {
			logger.Log.Fatalf("Erro no AutoMigrate: %v", err)
		}
	}

	// Repositórios
	usuarioRepo := usuario.NewRepository(conn)
	modeloRepo := modelodespesa.NewRepository(conn)
	lembreteRepo := lembrete.NewRepository(conn)
	despesaFixaRepo := despesafixa.NewRepository(conn)
	despesaVariavelRepo := despesavariavel.NewRepository(conn)
	recebimentoRepo := recebimento.NewRepository(conn)
	orcamentoRepo := orcamento.NewRepository(conn)

	seedAdmin(usuarioRepo)

	// Handlers
	authHandler := auth.NewHandler(usuarioRepo)
	modeloHandler := modelodespesa.NewHandler(modeloRepo)
	lembreteHandler := lembrete.NewHandler(lembreteRepo)
	despesaFixaHandler := despesafixa.NewHandler(despesaFixaRepo, lembreteRepo)
	despesaVariavelHandler := despesavariavel.NewHandler(despesaVariavelRepo, lembreteRepo)
	recebimentoHandler := recebimento.NewHandler(recebimentoRepo, lembreteRepo)
	orcamentoHandler := orcamento.NewHandler(orcamentoRepo)

	agendadorService := agendador.NewService(modeloRepo, despesaFixaRepo, lembreteRepo)
	agendadorHandler := agendador.NewHandler(agendadorService)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de modelos de despesa
	api.HandleFunc("/modelos-despesa", modeloHandler.Criar).Methods("POST")
	api.HandleFunc("/modelos-despesa", modeloHandler.Listar).Methods("GET")
	api.HandleFunc("/modelos-despesa/{id}", modeloHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/modelos-despesa/{id}", modeloHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/modelos-despesa/{id}", modeloHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/modelos-despesa/{id}/instanciar", agendadorHandler.Instanciar).Methods("POST")

	// Rotas de despesas fixas
	api.HandleFunc("/despesas-fixas", despesaFixaHandler.Criar).Methods("POST")
	api.HandleFunc("/despesas-fixas", despesaFixaHandler.Listar).Methods("GET")
	api.HandleFunc("/despesas-fixas/{id}", despesaFixaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/despesas-fixas/{id}", despesaFixaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/despesas-fixas/{id}", despesaFixaHandler.Deletar).Methods("DELETE")

	// Rotas de despesas variáveis
	api.HandleFunc("/despesas-variaveis", despesaVariavelHandler.Criar).Methods("POST")
	api.HandleFunc("/despesas-variaveis", despesaVariavelHandler.Listar).Methods("GET")
	api.HandleFunc("/despesas-variaveis/{id}", despesaVariavelHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/despesas-variaveis/{id}", despesaVariavelHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/despesas-variaveis/{id}", despesaVariavelHandler.Deletar).Methods("DELETE")

	// Rotas de recebimentos
	api.HandleFunc("/recebimentos", recebimentoHandler.Criar).Methods("POST")
	api.HandleFunc("/recebimentos", recebimentoHandler.Listar).Methods("GET")
	api.HandleFunc("/recebimentos/{id}", recebimentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/recebimentos/{id}", recebimentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/recebimentos/{id}", recebimentoHandler.Deletar).Methods("DELETE")

	// Rotas de lembretes
	api.HandleFunc("/lembretes", lembreteHandler.Criar).Methods("POST")
	api.HandleFunc("/lembretes", lembreteHandler.Listar).Methods("GET")
	api.HandleFunc("/lembretes/{id}", lembreteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/lembretes/{id}", lembreteHandler.Deletar).Methods("DELETE")

	// Rotas de orçamentos
	api.HandleFunc("/orcamentos", orcamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/orcamentos", orcamentoHandler.Upsert).Methods("POST")
	api.HandleFunc("/orcamentos/{mes}", orcamentoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/orcamentos/{mes}/resumo", orcamentoHandler.Resumo).Methods("GET")

	// Execução manual do agendador (somente admin)
	api.Handle("/agendador/executar",
		auth.RequireAdmin(http.HandlerFunc(agendadorHandler.Executar))).Methods("POST")

	// Cron diário do agendador
	agendadorCron := agendador.NewCron(agendadorService)
	if err := agendadorCron.Start(cfg.CronAgendador); err != nil {
		logger.Log.Fatalf("Erro ao iniciar o agendador: %v", err)
	}
	defer agendadorCron.Stop()

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigens,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	logger.Log.Infof("Servidor rodando em http://localhost:%s", cfg.Porta)
	logger.Log.Fatal(http.ListenAndServe(":"+cfg.Porta, c.Handler(r)))
}

// seedAdmin garante um usuário administrador inicial quando as variáveis
// ADMIN_EMAIL e ADMIN_PASSWORD estão definidas e o e-mail ainda não existe.
func seedAdmin(repo *usuario.Repository) {
	email := os.Getenv("ADMIN_EMAIL")
	senha := os.Getenv("ADMIN_PASSWORD")
	if email == "" || senha == "" {
		return
	}

	if _, err := repo.BuscarPorEmail(email); err == nil {
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Log.Warnf("Não foi possível verificar o usuário admin: %v", err)
		return
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		logger.Log.Warnf("Não foi possível gerar o hash do admin: %v", err)
		return
	}
	u := &usuario.Usuario{Nome: "Administrador", Email: email, SenhaHash: hash, Admin: true}
	if err := repo.Criar(u); err != nil {
		logger.Log.Warnf("Não foi possível criar o usuário admin: %v", err)
		return
	}
	logger.Log.Infof("Usuário admin %s criado", email)
}
