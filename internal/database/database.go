package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"shophub_back_end/internal/store"

	"github.com/redis/go-redis/v9"
)

var (
	// Redis est le client brut (pub/sub, verrous) ; nil en mode mémoire
	Redis *redis.Client

	// Store est l'adaptateur de persistance utilisé par tout le backend
	Store store.Store
)

// Connect initialise la persistance. Sans REDIS_HOST on bascule sur le
// store en mémoire (mode dev uniquement : rien ne survit au redémarrage).
func Connect() error {
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		log.Println("⚠️  REDIS_HOST non configuré : store en mémoire (mode dev)")
		Store = store.NewMemoryStore()
		return nil
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := Redis.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("impossible de se connecter à Redis: %w", err)
	}

	Store = store.NewRedisStore(Redis)
	log.Println("✅ Redis connecté avec succès")
	return nil
}

// Close ferme la connexion Redis
func Close() error {
	if Redis != nil {
		return Redis.Close()
	}
	return nil
}

// PublishCartEvent notifie les clients websocket d'un changement de panier.
// Silencieux en mode mémoire (pas de pub/sub).
func PublishCartEvent(ctx context.Context, userID, event string) {
	if Redis == nil {
		return
	}
	if err := Redis.Publish(ctx, "cart-events:"+userID, event).Err(); err != nil {
		log.Printf("⚠️ Erreur publication événement panier: %v", err)
	}
}
