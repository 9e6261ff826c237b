package config

import "os"

// Server holds backend configuration read from the environment.
type Server struct {
	Port        string
	DatabaseURL string
}

// Gateway holds gateway configuration read from the environment.
type Gateway struct {
	Port      string
	ServerURL string
}

// LoadServer reads backend settings. An empty DATABASE_URL selects the
// in-memory store.
func LoadServer() Server {
	return Server{
		Port:        getenv("APP_PORT", "9090"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

// LoadGateway reads gateway settings.
func LoadGateway() Gateway {
	return Gateway{
		Port:      getenv("GATEWAY_PORT", "8080"),
		ServerURL: getenv("SHAREIT_SERVER_URL", "http://localhost:9090"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
