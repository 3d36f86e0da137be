package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Settings holds everything the gateway needs at startup. Values come from
// the environment (SPEECHCOACH_* prefix) with an optional speechcoach.yaml
// alongside the binary; GROQ_API_KEY is also honored bare for compatibility
// with existing deployments.
type Settings struct {
	ListenAddr  string
	GroqAPIKey  string
	GroqBaseURL string
	SupabaseURL string
	SupabaseKey string
	DemoSeed    bool
}

func Load() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("SPEECHCOACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("groq_base_url", "https://api.groq.com/openai/v1")

	_ = v.BindEnv("groq_api_key", "SPEECHCOACH_GROQ_API_KEY", "GROQ_API_KEY")
	_ = v.BindEnv("supabase_url", "SPEECHCOACH_SUPABASE_URL", "SUPABASE_URL")
	_ = v.BindEnv("supabase_key", "SPEECHCOACH_SUPABASE_KEY", "SUPABASE_SERVICE_KEY")

	v.SetConfigName("speechcoach")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Settings{
		ListenAddr:  v.GetString("listen_addr"),
		GroqAPIKey:  strings.Trim(v.GetString("groq_api_key"), `"' `),
		GroqBaseURL: v.GetString("groq_base_url"),
		SupabaseURL: v.GetString("supabase_url"),
		SupabaseKey: v.GetString("supabase_key"),
		DemoSeed:    v.GetBool("demo_seed"),
	}, nil
}
