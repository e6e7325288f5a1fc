package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name  string
	Debug bool
	HTTP  HTTP
}

type Log struct {
	Level string
	JSON  bool
	File  string
}

type DB struct {
	URL                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

// Admin holds the shared dashboard credential pair. The fallback values
// mirror the historical deployment defaults and are insecure on purpose;
// production must override them via environment.
type Admin struct {
	Username string
	Password string
}

type Config struct {
	App       App
	Log       Log
	DB        DB
	Admin     Admin
	SecretKey string
}

// Load reads an optional yaml file (CONFIG_PATH) and lets environment
// variables override everything. With no file and no env set the defaults
// give a working local instance on sqlite.
func Load(path string) *Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "petcare")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 5000)
	v.SetDefault("app.http.readtimeoutsec", 10)
	v.SetDefault("app.http.writetimeoutsec", 20)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("db.url", "")
	v.SetDefault("db.maxopenconns", 5)
	v.SetDefault("db.maxidleconns", 5)
	v.SetDefault("db.connmaxlifetimemin", 5)
	v.SetDefault("db.loglevel", "warn")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("secretkey", "petcare-secret-key-change-in-production")

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("read config: %v", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}

	// Flat names used by the hosting platform win over the dotted keys.
	if s := os.Getenv("DATABASE_URL"); s != "" {
		c.DB.URL = s
	}
	if s := os.Getenv("SECRET_KEY"); s != "" {
		c.SecretKey = s
	}
	if s := os.Getenv("ADMIN_USERNAME"); s != "" {
		c.Admin.Username = s
	}
	if s := os.Getenv("ADMIN_PASSWORD"); s != "" {
		c.Admin.Password = s
	}
	if s := os.Getenv("PORT"); s != "" {
		if p, err := strconv.Atoi(s); err == nil && p > 0 {
			c.App.HTTP.Port = p
		}
	}
	if s := os.Getenv("DEBUG"); strings.EqualFold(s, "true") {
		c.App.Debug = true
	}
	return &c
}
