package config

import (
	"os"
	"sync"
)

type Application struct {
	Name     string
	LogLevel string
}

// Store holds the location of each entity kind's durable file. One file per
// kind; there is no cross-file transaction.
type Store struct {
	DataDir   string
	GuestFile string
	EventFile string
	OrderFile string
}

// AdminAccount seeds the reporting admin at startup. The password is kept
// as an opaque plaintext string, matching the stored guest credentials;
// nothing in this system hashes credentials.
type AdminAccount struct {
	ID       string
	Name     string
	Email    string
	Password string
}

type Config struct {
	Application Application
	Store       Store
	Admin       AdminAccount
}

var (
	once sync.Once
	c    *Config
)

func Get() *Config {
	once.Do(func() {
		c = &Config{
			Application: Application{
				Name:     getEnv("APP_NAME", "mp-booking"),
				LogLevel: getEnv("LOG_LEVEL", "info"),
			},
			Store: Store{
				DataDir:   getEnv("DATA_DIR", "."),
				GuestFile: getEnv("GUEST_STORE_FILE", "guests.json"),
				EventFile: getEnv("EVENT_STORE_FILE", "events.json"),
				OrderFile: getEnv("ORDER_STORE_FILE", "purchase_orders.json"),
			},
			Admin: AdminAccount{
				ID:       getEnv("ADMIN_ID", "Admin"),
				Name:     getEnv("ADMIN_NAME", "Khalifa"),
				Email:    getEnv("ADMIN_EMAIL", "admin@marhaba-park.ae"),
				Password: getEnv("ADMIN_PASSWORD", "khalifa123"),
			},
		}
	})

	return c
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
