package database

import (
	"context"
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// --- Variables Globales ---
var (
	Postgres *pgxpool.Pool
	Redis    *redis.Client
)

// Options de connexion aux bases.
type Options struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
}

// ConnectDatabases initialise Postgres (avec migrations) puis Redis.
func ConnectDatabases(opts Options) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := connectPostgres(ctx, opts.DatabaseURL); err != nil {
		return fmt.Errorf("échec initialisation Postgres: %w", err)
	}

	connectRedis(ctx, opts)

	log.Println("✅ Toutes les bases de données sont connectées")
	return nil
}

func connectPostgres(ctx context.Context, dsn string) error {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("parse pool config: %w", err)
	}
	cfg.MaxConns = 20

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return err
	}

	Postgres = pool
	log.Println("✅ Postgres connecté et migré")
	return nil
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func connectRedis(ctx context.Context, opts Options) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		// Le cache est optionnel : on démarre quand même, les lectures
		// retomberont sur Postgres.
		log.Printf("⚠️ Redis injoignable (%v) — cache désactivé", err)
	} else {
		log.Println("✅ Redis connecté")
	}
}

// Close ferme proprement les connexions ouvertes.
func Close() {
	if Postgres != nil {
		Postgres.Close()
	}
	if Redis != nil {
		_ = Redis.Close()
	}
}
