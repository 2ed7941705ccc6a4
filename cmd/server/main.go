package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"billmitra/internal/config"
	"billmitra/internal/domain"
	"billmitra/internal/email/noop"
	"billmitra/internal/email/ses"
	"billmitra/internal/ewaybill"
	"billmitra/internal/handler"
	"billmitra/internal/hsn"
	"billmitra/internal/ledger"
	"billmitra/internal/port"
	"billmitra/internal/rental"
	"billmitra/internal/repository/postgres"
	"billmitra/internal/router"
	"billmitra/internal/service"
	s3storage "billmitra/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	partyRepo := postgres.NewPartyRepo(db)
	productRepo := postgres.NewProductRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	purchaseRepo := postgres.NewPurchaseRepo(db)
	ewayBillRepo := postgres.NewEWayBillRepo(db)
	rentalRepo := postgres.NewRentalRepo(db)
	itrRepo := postgres.NewITRRepo(db)
	hsnRepo := postgres.NewHSNRepo(db)
	industryRepo := postgres.NewIndustryConfigRepo(db)

	// Load the HSN master into memory. Invoice creation still works without
	// it; rate warnings are simply skipped.
	var lookup *hsn.Lookup
	entries, err := hsnRepo.LoadAll(context.Background())
	if err != nil {
		log.Printf("HSN master unavailable, rate validation disabled: %v", err)
	} else {
		lookup = hsn.NewLookup(entries)
		log.Printf("loaded %d HSN entries", len(entries))
	}

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize the reminder notifier
	var notifier port.Notifier
	switch cfg.Email.Provider {
	case "ses":
		notifier, err = ses.NewSESNotifier(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES notifier: %w", err)
		}
	default:
		notifier = noop.NewNoopNotifier()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	tenantSvc := service.NewTenantService(tenantRepo, industryRepo)
	userSvc := service.NewUserService(userRepo)
	partySvc := service.NewPartyService(partyRepo)
	productSvc := service.NewProductService(productRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, paymentRepo, partyRepo, tenantRepo, lookup)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, partyRepo)
	ewayBillSvc := ewaybill.NewService(ewayBillRepo)
	rentalSvc := rental.NewService(rentalRepo, partyRepo, notifier)
	itrSvc := service.NewITRService(itrRepo)

	aggregator := ledger.NewAggregator(invoiceRepo, paymentRepo, purchaseRepo)
	ledgerSvc := service.NewLedgerService(
		aggregator, partyRepo, s3Client, cfg.S3.Bucket,
		time.Duration(cfg.S3.PresignExpiry)*time.Second,
	)

	// Initialize handlers
	h := router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		Tenant:   handler.NewTenantHandler(tenantSvc),
		User:     handler.NewUserHandler(userSvc),
		Party:    handler.NewPartyHandler(partySvc),
		Product:  handler.NewProductHandler(productSvc),
		Invoice:  handler.NewInvoiceHandler(invoiceSvc),
		Purchase: handler.NewPurchaseHandler(purchaseSvc),
		EWayBill: handler.NewEWayBillHandler(ewayBillSvc),
		Ledger:   handler.NewLedgerHandler(ledgerSvc),
		Rental:   handler.NewRentalHandler(rentalSvc),
		ITR:      handler.NewITRHandler(itrSvc),
		Health:   handler.NewHealthHandler(db),
	}

	if cfg.Reminders.Enabled {
		go runReminderScheduler(tenantRepo, tenantSvc, rentalSvc, cfg.Reminders.IntervalMinutes)
	}

	// Setup router
	r := router.Setup(authSvc, tenantSvc, cfg.CORS.AllowedOrigins, h)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// runReminderScheduler periodically sends overdue and due-today rental
// reminders for every active tenant whose industry enables rentals.
func runReminderScheduler(tenants port.TenantRepository, tenantSvc service.TenantService, rentals rental.Service, intervalMinutes int) {
	interval := time.Duration(intervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		runReminderPass(ctx, tenants, tenantSvc, rentals)
		cancel()
	}
}

func runReminderPass(ctx context.Context, tenants port.TenantRepository, tenantSvc service.TenantService, rentals rental.Service) {
	const pageSize = 100
	for offset := 0; ; offset += pageSize {
		page, total, err := tenants.List(ctx, offset, pageSize)
		if err != nil {
			log.Printf("reminder pass: listing tenants: %v", err)
			return
		}
		for _, t := range page {
			if !t.IsActive {
				continue
			}
			features, err := tenantSvc.Features(ctx, t.ID)
			if err != nil || !features.EnableRentals {
				continue
			}
			for _, kind := range []domain.ReminderType{domain.ReminderOverdue, domain.ReminderDueToday} {
				results, err := rentals.SendReminders(ctx, t.ID, kind, nil)
				if err != nil {
					log.Printf("reminder pass: tenant %s kind %s: %v", t.ID, kind, err)
					continue
				}
				if len(results) > 0 {
					log.Printf("reminder pass: tenant %s kind %s: %d reminders", t.ID, kind, len(results))
				}
			}
		}
		if offset+pageSize >= total {
			return
		}
	}
}
