package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string
	Seed    bool
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	seed := strings.TrimSpace(os.Getenv("SEED_DEMO_DATA"))

	return Env{
		AppAddr: appAddr,
		GinMode: ginMode,
		Seed:    seed == "" || strings.EqualFold(seed, "true") || seed == "1",
	}
}
