package main

import (
	"log"
	"net/http"
	"os"

	"github.com/AsielSouza/advsystem/internal/advogado"
	"github.com/AsielSouza/advsystem/internal/auth"
	"github.com/AsielSouza/advsystem/internal/cliente"
	"github.com/AsielSouza/advsystem/internal/divisao"
	"github.com/AsielSouza/advsystem/internal/historico"
	"github.com/AsielSouza/advsystem/internal/honorario"
	"github.com/AsielSouza/advsystem/internal/parcela"
	"github.com/AsielSouza/advsystem/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Erro ao iniciar logger:", err)
	}
	defer logger.Sync()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&advogado.Advogado{},
		&cliente.PessoaFisica{},
		&cliente.PessoaJuridica{},
		&honorario.Honorario{},
		&historico.Historico{},
		&parcela.Parcela{},
		&divisao.Divisao{},
		&auth.RefreshToken{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	honorarioService := honorario.NewService(database, logger)
	honorarioHandler := honorario.NewHandler(honorarioService)
	parcelaHandler := parcela.NewHandler(parcela.NewRepository(database))
	clienteHandler := cliente.NewHandler(database)
	advogadoHandler := advogado.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas de autenticação
	r.HandleFunc("/auth/login", auth.LoginHandler(database)).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(database)).Methods("POST")

	// Rotas protegidas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de honorários
	api.HandleFunc("/honorarios", honorarioHandler.Criar).Methods("POST")
	api.HandleFunc("/honorarios", honorarioHandler.Listar).Methods("GET")
	api.HandleFunc("/honorarios/{id}", honorarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/honorarios/{id}", honorarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/honorarios/{id}", honorarioHandler.Deletar).Methods("DELETE")

	// Rotas de parcelas
	api.HandleFunc("/honorarios/{id}/parcelas", parcelaHandler.ListarPorHonorario).Methods("GET")
	api.HandleFunc("/parcelas/{pid}/pagamento", parcelaHandler.RegistrarPagamento).Methods("PATCH")

	// Rotas de clientes
	api.HandleFunc("/clientes/fisicas", clienteHandler.CriarPF).Methods("POST")
	api.HandleFunc("/clientes/fisicas", clienteHandler.ListarPF).Methods("GET")
	api.HandleFunc("/clientes/fisicas/{id}", clienteHandler.BuscarPF).Methods("GET")
	api.HandleFunc("/clientes/juridicas", clienteHandler.CriarPJ).Methods("POST")
	api.HandleFunc("/clientes/juridicas", clienteHandler.ListarPJ).Methods("GET")
	api.HandleFunc("/clientes/juridicas/{id}", clienteHandler.BuscarPJ).Methods("GET")

	// Rotas de advogados
	api.HandleFunc("/advogados", advogadoHandler.Criar).Methods("POST")
	api.HandleFunc("/advogados", advogadoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/advogados/{id}", advogadoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/advogados/{id}", advogadoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/advogados/{id}", advogadoHandler.Deletar).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("servidor iniciado", zap.String("porta", port))
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
