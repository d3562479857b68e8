package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"miniblog/internal/core/repository"
	"miniblog/internal/core/service"
	"miniblog/internal/infrastructure/database"
	"miniblog/pkg/config"
	"miniblog/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "miniblog",
	Short: "A minimal multi-user blog",
	Long: `Miniblog is a minimal multi-user blogging service.

Users register, log in, and publish text posts visible to all visitors in
reverse-chronological order. Storage is Postgres when DATABASE_URL is set
and a local SQLite file otherwise.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log, err = logger.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file (environment is the primary source)")
}

// Services holds all initialized services
type Services struct {
	DB       *database.DB
	UserRepo repository.UserRepository
	PostRepo repository.PostRepository
	Users    *service.UserService
	Sessions *service.SessionService
	Posts    *service.PostService
}

// initServices opens storage through the readiness gate and wires the
// services on top of it. It blocks until the backend is reachable or the
// retry budget is spent.
func initServices() (*Services, error) {
	db, err := database.OpenWithRetry(cfg.DatabaseURL, cfg.SQLitePath, database.RetryConfig{
		MaxAttempts: cfg.DBMaxAttempts,
		Delay:       cfg.DBRetryDelay,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := database.NewUserRepository(db)
	postRepo := database.NewPostRepository(db)

	return &Services{
		DB:       db,
		UserRepo: userRepo,
		PostRepo: postRepo,
		Users:    service.NewUserService(userRepo),
		Sessions: service.NewSessionService(userRepo, cfg.SecretKey),
		Posts:    service.NewPostService(postRepo),
	}, nil
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
