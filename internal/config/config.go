package config

import (
	"os"
	"strconv"
	"strings"
)

// Document store backends
const (
	DataStoreFile      = "file"
	DataStoreFirestore = "firestore"
	DataStoreSQLite    = "sqlite"
	DataStorePostgres  = "postgres"
	DataStoreMemory    = "memory"
)

// Image store backends
const (
	ImageStoreFilesystem = "fs"
	ImageStoreS3         = "s3"
	ImageStoreMemory     = "memory"
)

const defaultMaxUploadBytes = 10 << 20

type Config struct {
	Port                string
	LogLevel            string
	DataStore           string
	DataFile            string
	SQLitePath          string
	PostgresDSN         string
	ProjectID           string
	FirestoreCollection string
	PresetFile          string
	ImageStore          string
	ImageDir            string
	S3Bucket            string
	S3Region            string
	S3Endpoint          string
	S3PathStyle         bool
	S3Prefix            string
	MaxUploadBytes      int64
}

func New() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            os.Getenv("LOGLEVEL"),
		DataStore:           strings.ToLower(getEnv("DATASTORE", DataStoreFile)),
		DataFile:            getEnv("DATAFILE", "data.json"),
		SQLitePath:          getEnv("SQLITEPATH", "startpage.db"),
		PostgresDSN:         os.Getenv("POSTGRESDSN"),
		ProjectID:           os.Getenv("PROJECTID"),
		FirestoreCollection: getEnv("FIRESTORECOLLECTION", "startpage"),
		PresetFile:          os.Getenv("PRESETFILE"),
		ImageStore:          strings.ToLower(getEnv("IMAGESTORE", ImageStoreFilesystem)),
		ImageDir:            getEnv("IMAGEDIR", "static/img"),
		S3Bucket:            os.Getenv("S3BUCKET"),
		S3Region:            os.Getenv("S3REGION"),
		S3Endpoint:          os.Getenv("S3ENDPOINT"),
		S3PathStyle:         getBool("S3PATHSTYLE"),
		S3Prefix:            os.Getenv("S3PREFIX"),
		MaxUploadBytes:      getInt64("MAXUPLOADBYTES", defaultMaxUploadBytes),
	}
}

// ---- Helpers ----

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func getInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
