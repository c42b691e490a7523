package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	attachPaymentProofHandler "github.com/kumbila/reservation-service/internal/api/handlers/attach_payment_proof"
	cancelReservationHandler "github.com/kumbila/reservation-service/internal/api/handlers/cancel_reservation"
	confirmReservationHandler "github.com/kumbila/reservation-service/internal/api/handlers/confirm_reservation"
	createPaymentHandler "github.com/kumbila/reservation-service/internal/api/handlers/create_payment"
	createReservationHandler "github.com/kumbila/reservation-service/internal/api/handlers/create_reservation"
	getRenterReservationsHandler "github.com/kumbila/reservation-service/internal/api/handlers/get_renter_reservations"
	getReservationHandler "github.com/kumbila/reservation-service/internal/api/handlers/get_reservation"
	getReservationPaymentHandler "github.com/kumbila/reservation-service/internal/api/handlers/get_reservation_payment"
	getSpaceReservationsHandler "github.com/kumbila/reservation-service/internal/api/handlers/get_space_reservations"
	performCheckinHandler "github.com/kumbila/reservation-service/internal/api/handlers/perform_checkin"
	performCheckoutHandler "github.com/kumbila/reservation-service/internal/api/handlers/perform_checkout"
	updatePaymentStatusHandler "github.com/kumbila/reservation-service/internal/api/handlers/update_payment_status"
	"github.com/kumbila/reservation-service/internal/api/middleware"
	"github.com/kumbila/reservation-service/internal/config"
	"github.com/kumbila/reservation-service/internal/domain"
	checkinRepo "github.com/kumbila/reservation-service/internal/infra/storage/checkin"
	paymentRepo "github.com/kumbila/reservation-service/internal/infra/storage/payment"
	reservationRepo "github.com/kumbila/reservation-service/internal/infra/storage/reservation"
	"github.com/kumbila/reservation-service/internal/integrations/notifier"
	paymentsService "github.com/kumbila/reservation-service/internal/service/payments"
	reservationsService "github.com/kumbila/reservation-service/internal/service/reservations"
	performCheckinUC "github.com/kumbila/reservation-service/internal/usecase/perform_checkin"
	"github.com/kumbila/reservation-service/pkg/dbmetrics"
	"github.com/kumbila/reservation-service/pkg/logger"
	"github.com/kumbila/reservation-service/pkg/metrics"
	"github.com/kumbila/reservation-service/pkg/simpletxmanager"
	"github.com/kumbila/reservation-service/pkg/txmanager"
)

func main() {
	// Carregamos a configuração
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializamos o logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting kumbila-reservation-service...")
	log.Info("Configuration loaded from config.toml")

	// Inicializamos as métricas (se activadas)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Ligamos à base de dados
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Afinamos o connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Publisher de eventos de reserva (se activado); caso contrário no-op
	type Notifier interface {
		PublishReservationEvent(ctx context.Context, key string, res *domain.Reservation) error
	}
	var notif Notifier = notifier.NopPublisher{}

	if cfg.Notifications.Enabled {
		publisher, err := notifier.NewPublisher(cfg.Notifications.URL, cfg.Notifications.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to notification broker: %v", err)
		}
		defer publisher.Close()
		notif = publisher
		log.Info("Notification publisher connected (exchange=%s)", cfg.Notifications.Exchange)
	}

	// Motor de ciclo de vida parametrizado pela configuração
	lifecycle := domain.Lifecycle{
		CheckinGrace:             time.Duration(cfg.Lifecycle.CheckinGraceMinutes) * time.Minute,
		OwnerBypassesPaymentGate: cfg.Lifecycle.OwnerCheckinBypassesPayment,
	}

	// Repositórios e transaction manager (com ou sem métricas)
	var (
		reservationRepository *reservationRepo.Repository
		paymentRepository     *paymentRepo.Repository
		checkinRepository     *checkinRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		checkinRepository = checkinRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		checkinRepository = checkinRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Serviços
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		lifecycle,
		notif,
		log,
	)
	paymentSvc := paymentsService.NewService(
		paymentRepository,
		reservationRepository,
		log,
	)

	// Use case do procedimento de check-in/check-out
	performCheckinUseCase := performCheckinUC.NewUseCase(
		reservationRepository,
		paymentRepository,
		checkinRepository,
		txMgr,
		notif,
		lifecycle,
		log,
	)

	// Handlers
	createReservation := createReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getRenterReservations := getRenterReservationsHandler.NewHandler(reservationSvc, log)
	getSpaceReservations := getSpaceReservationsHandler.NewHandler(reservationSvc, log)
	createPayment := createPaymentHandler.NewHandler(paymentSvc, log)
	getReservationPayment := getReservationPaymentHandler.NewHandler(paymentSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(paymentSvc, log)
	attachPaymentProof := attachPaymentProofHandler.NewHandler(paymentSvc, log)
	performCheckin := performCheckinHandler.NewHandler(performCheckinUseCase, log)
	performCheckout := performCheckoutHandler.NewHandler(performCheckinUseCase, log)

	// Router
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"método não permitido"}`))
	})

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// ROTAS DE EDGE (QR de check-in/check-out; sessão opcional)
	// ============================================================

	api.HandleFunc("/checkin/{reservationId}", performCheckin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/checkout/{reservationId}", performCheckout.Handle).Methods(http.MethodPost)

	// ============================================================
	// ROTAS PROTEGIDAS (exigem X-User-ID do gateway de identidade)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Reservas ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/reservations", getRenterReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/spaces/{spaceId}/reservations", getSpaceReservations.Handle).Methods(http.MethodGet)

	// --- Pagamentos ---
	protected.HandleFunc("/payments", createPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/payment", getReservationPayment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{paymentId}/status", updatePaymentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/payments/{paymentId}/proof", attachPaymentProof.Handle).Methods(http.MethodPatch)

	// Servidor HTTP. O CORS envolve o router completo para os headers
	// irem em todas as respostas e o preflight OPTIONS responder 204
	// antes do routing.
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
