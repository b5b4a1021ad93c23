package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Data    DataConfig
	Exports ExportsConfig
	Log     LogConfig
}

// DataConfig locates the flat-file collections on disk.
type DataConfig struct {
	Dir             string
	MajorsFile      string
	StudentsFile    string
	CoursesFile     string
	EnrollmentsFile string
	EnableFileLock  bool
}

// ExportsConfig controls report export output.
type ExportsConfig struct {
	Dir string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Data = DataConfig{
		Dir:             v.GetString("DATA_DIR"),
		MajorsFile:      v.GetString("MAJORS_FILE"),
		StudentsFile:    v.GetString("STUDENTS_FILE"),
		CoursesFile:     v.GetString("COURSES_FILE"),
		EnrollmentsFile: v.GetString("ENROLLMENTS_FILE"),
		EnableFileLock:  v.GetBool("ENABLE_FILE_LOCK"),
	}

	cfg.Exports = ExportsConfig{Dir: v.GetString("EXPORTS_DIR")}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("MAJORS_FILE", "carreras.csv")
	v.SetDefault("STUDENTS_FILE", "estudiantes.csv")
	v.SetDefault("COURSES_FILE", "cursos.csv")
	v.SetDefault("ENROLLMENTS_FILE", "matriculas.json")
	v.SetDefault("ENABLE_FILE_LOCK", true)

	v.SetDefault("EXPORTS_DIR", "./exports")

	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")
}
