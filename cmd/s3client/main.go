// Command s3client is a command-line client for S3-compatible object
// storage: bucket and object management, recursive upload/download with
// progress tracking, and listing with optional table output.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	s3client "github.com/thobiast/s3-client"
	"github.com/thobiast/s3-client/internal/config"
	"github.com/thobiast/s3-client/s3types"
)

var logger = zerolog.Nop()

func main() {
	// .env is optional
	_ = godotenv.Load()

	settings, err := config.Load()
	if err != nil {
		printError("Error: %v", err)
		os.Exit(1)
	}

	app := newApp(settings)
	if err := app.Run(os.Args); err != nil {
		// Exit-coded errors terminate inside Run; usage and unexpected
		// action errors land here.
		printError("Error: %v", err)
		os.Exit(1)
	}
}

func newApp(settings config.Settings) *cli.App {
	return &cli.App{
		Name:    "s3client",
		Usage:   "command-line client for S3-compatible object storage",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enable debug logging, including SDK request logs",
			},
			&cli.StringFlag{
				Name:    "endpoint",
				Aliases: []string{"e"},
				Usage:   "custom S3 endpoint `URL` (MinIO, Ceph RGW, localstack)",
				Value:   settings.Endpoint,
			},
			&cli.StringFlag{
				Name:    "region",
				Aliases: []string{"r"},
				Usage:   "region `NAME` the requests are sent to",
				Value:   settings.Region,
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "shared credentials profile `NAME`",
				Value: settings.Profile,
			},
			&cli.StringFlag{
				Name:  "checksum-policy",
				Usage: "checksum calculation policy (when_supported or when_required)",
				Value: settings.ChecksumPolicy,
			},
		},
		Before: func(c *cli.Context) error {
			setupLogger(c.Bool("debug"))

			policy := c.String("checksum-policy")
			if policy != "" && policy != string(s3types.ChecksumWhenSupported) && policy != string(s3types.ChecksumWhenRequired) {
				printError("Error: invalid checksum policy '%s' (use when_supported or when_required)", policy)
				return cli.Exit("", 1)
			}
			return nil
		},
		Commands: []*cli.Command{
			newCreateBucketCommand(settings),
			newListBucketsCommand(settings),
			newDeleteBucketCommand(settings),
			newListObjCommand(settings),
			newDeleteObjCommand(settings),
			newMetadataObjCommand(settings),
			newUploadCommand(settings),
			newDownloadCommand(settings),
		},
	}
}

func setupLogger(debug bool) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// newClient builds the library client from global flags and settings.
func newClient(c *cli.Context, settings config.Settings) (*s3client.Client, error) {
	opts := []s3types.Option{
		s3client.WithMaxRetries(settings.MaxRetries),
	}

	if settings.ReadTimeout > 0 {
		opts = append(opts, s3client.WithReadTimeout(time.Duration(settings.ReadTimeout)*time.Second))
	}
	if endpoint := c.String("endpoint"); endpoint != "" {
		// Custom endpoints rarely support virtual-hosted addressing
		opts = append(opts,
			s3client.WithEndpoint(endpoint),
			s3client.WithForcePathStyle(true),
		)
	}
	if region := c.String("region"); region != "" {
		opts = append(opts, s3client.WithRegion(region))
	}
	if profile := c.String("profile"); profile != "" {
		opts = append(opts, s3client.WithProfile(profile))
	}
	switch c.String("checksum-policy") {
	case string(s3types.ChecksumWhenSupported):
		opts = append(opts, s3client.WithChecksumPolicy(s3types.ChecksumWhenSupported))
	case string(s3types.ChecksumWhenRequired):
		opts = append(opts, s3client.WithChecksumPolicy(s3types.ChecksumWhenRequired))
	}
	if c.Bool("debug") {
		opts = append(opts, s3client.WithDebugLogging(true))
	}

	client, err := s3client.New(opts...)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("endpoint", c.String("endpoint")).
		Str("region", c.String("region")).
		Str("profile", c.String("profile")).
		Msg("client initialized")

	return client, nil
}

// requireBucket enforces the bucket-existence precondition shared by
// every data subcommand.
func requireBucket(c *cli.Context, client *s3client.Client, bucket string) error {
	exists, err := client.BucketExists(c.Context, bucket)
	if err != nil {
		printError("Error: %v", err)
		return cli.Exit("", 1)
	}
	if !exists {
		printError("Error: Bucket '%s' does not exist", bucket)
		return cli.Exit("", 1)
	}
	return nil
}
