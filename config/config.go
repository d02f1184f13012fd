package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	NatsURL     string
	Environment string

	// ExecutorRegistry maps task-kind tags to driver factory names as a JSON
	// object, e.g. {"online":"docker","sandbox":"docker"}. Empty means the
	// default docker driver only.
	ExecutorRegistry string

	// ExecutorImage is the default runtime image and the source of the shared
	// launcher binary used for custom-base-image launches.
	ExecutorImage string
	SharedVolume  string
	WorkspaceDir  string
	DockerHostIP  string

	CallbackURL         string
	ValidationStatusURL string
	HeartbeatURL        string

	PortRangeStart int
	PortRangeEnd   int

	// SeccompMode is "auto" (relax on old kernels), "unconfined" or "default".
	SeccompMode    string
	TracingEnabled bool

	ContainerLogFile string
}

func LoadConfig() Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	return Config{
		NatsURL:     getEnv("NATSURL", "nats://localhost:4222"),
		Environment: getEnv("ENVIRONMENT", "production"),

		ExecutorRegistry: getEnv("EXECUTORREGISTRY", ""),

		ExecutorImage: getEnv("EXECUTORIMAGE", "execengine/runner:latest"),
		SharedVolume:  getEnv("SHAREDVOLUME", "execengine-runner-bin"),
		WorkspaceDir:  getEnv("WORKSPACEDIR", "/var/lib/execengine/workspaces"),
		DockerHostIP:  getEnv("DOCKERHOSTIP", "127.0.0.1"),

		CallbackURL:         getEnv("CALLBACKURL", "http://localhost:8080/api/v1/tasks/callback"),
		ValidationStatusURL: getEnv("VALIDATIONSTATUSURL", ""),
		HeartbeatURL:        getEnv("HEARTBEATURL", ""),

		PortRangeStart: getEnvInt("PORTRANGESTART", 20000),
		PortRangeEnd:   getEnvInt("PORTRANGEEND", 29999),

		SeccompMode:    getEnv("SECCOMPMODE", "auto"),
		TracingEnabled: getEnv("TRACINGENABLED", "true") == "true",

		ContainerLogFile: getEnv("CONTAINERLOGFILE", "logs/container.log"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
