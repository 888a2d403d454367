package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type Dataset struct {
	Path          string
	ListDelimiter string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Classifier struct {
	URL   string
	Model string
	Token string
}

type Similarity struct {
	GenreWeight  float64
	RatingWeight float64
	YearWeight   float64
}

type Histogram struct {
	BucketWidth float64
}

type Config struct {
	HTTP       HTTPServer
	Dataset    Dataset
	Postgres   Postgres
	Redis      RedisCache
	Classifier Classifier
	Similarity Similarity
	Histogram  Histogram
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:       *newHTTP(),
		Dataset:    *newDataset(),
		Postgres:   *newPostgres(),
		Redis:      *newRedis(),
		Classifier: *newClassifier(),
		Similarity: *newSimilarity(),
		Histogram:  *newHistogram(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newDataset() *Dataset {
	return &Dataset{
		Path:          getenv("DATASET_PATH", "data.csv"),
		ListDelimiter: getenv("DATASET_LIST_DELIMITER", ","),
	}
}

// DB_HOST empty means the Postgres source is disabled and the
// catalog is loaded from the CSV instead.
func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", ""),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "catalog"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

// REDIS_HOST empty means the sentiment cache stays in-process.
func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", ""),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

// CLASSIFIER_URL empty means the sentiment panel runs against the
// built-in mock (useful for local runs without a model server).
func newClassifier() *Classifier {
	return &Classifier{
		URL:   getenv("CLASSIFIER_URL", ""),
		Model: getenv("CLASSIFIER_MODEL", "distilbert-base-uncased-finetuned-sst-2-english"),
		Token: getenv("CLASSIFIER_TOKEN", ""),
	}
}

func newSimilarity() *Similarity {
	return &Similarity{
		GenreWeight:  getenvFloat("SIMILARITY_GENRE_WEIGHT", 0.6),
		RatingWeight: getenvFloat("SIMILARITY_RATING_WEIGHT", 0.25),
		YearWeight:   getenvFloat("SIMILARITY_YEAR_WEIGHT", 0.15),
	}
}

func newHistogram() *Histogram {
	return &Histogram{
		BucketWidth: getenvFloat("HISTOGRAM_BUCKET_WIDTH", 0.5),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvFloat(key string, defaultValue float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %v\n", logtag, key, defaultValue)
		return defaultValue
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fmt.Printf("%s %s malformed (%s). Using default value %v\n", logtag, key, val, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %v\n", logtag, key, f)
	return f
}
