package utils

import (
	"errors"
	"fmt"
	"io/fs"

	"cinema-tickets/internal/data/entity"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ticket   TicketConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type TicketConfig struct {
	AdultPrice int
	ChildPrice int
}

// PriceList converts the configured prices into the pricing used by purchases
func (c TicketConfig) PriceList() entity.PriceList {
	return entity.PriceList{
		Adult: c.AdultPrice,
		Child: c.ChildPrice,
	}
}

// Validate rejects prices that would make a purchase total negative
func (c TicketConfig) Validate() error {
	if c.AdultPrice < 0 {
		return fmt.Errorf("TICKET_PRICE_ADULT must not be negative, got %d", c.AdultPrice)
	}
	if c.ChildPrice < 0 {
		return fmt.Errorf("TICKET_PRICE_CHILD must not be negative, got %d", c.ChildPrice)
	}
	return nil
}

// LoadConfig reads .env from the working directory, then the environment.
// A missing .env is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "cinema-tickets")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("TICKET_PRICE_ADULT", entity.DefaultPriceList.Adult)
	v.SetDefault("TICKET_PRICE_CHILD", entity.DefaultPriceList.Child)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Ticket: TicketConfig{
			AdultPrice: v.GetInt("TICKET_PRICE_ADULT"),
			ChildPrice: v.GetInt("TICKET_PRICE_CHILD"),
		},
	}

	if err := config.Ticket.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
