package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"
	DriverMemory    = "memory"
)

type AppConfig struct {
	Port        string
	Env         string
	StoreDriver string
	Collection  string

	FirebaseCredentialsPath string
	FirebaseProjectID       string

	MongoURI      string
	MongoDatabase string

	GeoDataURL   string
	ImageBaseURL string
	AuthRequired bool
}

// Load อ่านค่าจากไฟล์ .env (ถ้ามี) แล้วตามด้วย Environment Variables
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, reading from environment variables")
	}
	return FromEnv()
}

// FromEnv อ่านค่าจาก Environment Variables อย่างเดียว
func FromEnv() AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	return AppConfig{
		Port:                    get("PORT", "8080"),
		Env:                     get("APP_ENV", "production"),
		StoreDriver:             strings.ToLower(get("STORE_DRIVER", DriverFirestore)),
		Collection:              get("TECHNICIAN_COLLECTION", "technician"),
		FirebaseCredentialsPath: get("FIREBASE_CREDENTIALS_PATH", ""),
		FirebaseProjectID:       get("FIREBASE_PROJECT_ID", ""),
		MongoURI:                get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:           get("MONGO_DATABASE", "technicians"),
		GeoDataURL:              get("GEO_DATA_URL", ""),
		ImageBaseURL:            get("IMAGE_BASE_URL", "https://your-domain.com"),
		AuthRequired:            get("AUTH_REQUIRED", "false") == "true",
	}
}
