package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"brewhaus_back_end/internal/config"
	"brewhaus_back_end/internal/database"
	"brewhaus_back_end/internal/handlers"
	"brewhaus_back_end/internal/middleware"
	"brewhaus_back_end/internal/payments"
	"brewhaus_back_end/internal/routes"
	"brewhaus_back_end/internal/store"
	"brewhaus_back_end/internal/stripehook"
	"brewhaus_back_end/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Configuration invalide :", err)
	}

	if cfg.StripeSecretKey == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET manquant dans .env")
	}

	if err := database.ConnectDatabases(database.Options{
		DatabaseURL:   cfg.DatabaseURL,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
	}); err != nil {
		log.Fatal("❌ Connexion bases de données :", err)
	}
	defer database.Close()

	// Dépôts
	tiers := store.NewTiers(database.Postgres)
	orders := store.NewOrders(database.Postgres)
	users := store.NewUsers(database.Postgres)

	// Client Stripe construit explicitement (pas de clé globale)
	stripeClient := payments.New(cfg.StripeSecretKey, cfg.BaseURL)
	log.Println("✅ Stripe initialisé")

	reconciler := stripehook.NewReconciler(cfg.StripeWebhookSecret, orders)
	if cfg.StripeWebhookSecret == "" {
		log.Println("⚠️ STRIPE_WEBHOOK_SECRET manquant — les webhooks seront rejetés")
	}
	if cfg.SMTPHost != "" {
		mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
		reconciler.EnableConfirmationEmails(tiers, mailer)
		log.Println("✅ E-mails de confirmation activés")
	}

	h := handlers.New(tiers, orders, users, stripeClient, reconciler, cfg.JWTSecret)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.Default())
	routes.RegisterRoutes(r, h, cfg.JWTSecret)

	log.Println("🚀 Serveur Brewhaus lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Serveur arrêté :", err)
	}
}
