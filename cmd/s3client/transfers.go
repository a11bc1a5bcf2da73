package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/urfave/cli/v2"

	s3client "github.com/thobiast/s3-client"
	s3errors "github.com/thobiast/s3-client/errors"
	"github.com/thobiast/s3-client/internal/config"
	"github.com/thobiast/s3-client/internal/format"
	"github.com/thobiast/s3-client/internal/transfer"
	"github.com/thobiast/s3-client/s3types"
)

// uploadItem pairs the path as the user typed it (key derivation) with
// the absolute path used for reading.
type uploadItem struct {
	displayPath string
	absPath     string
	key         string
}

func newUploadCommand(settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Usage:     "upload files to a bucket",
		ArgsUsage: "BUCKET",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "upload a single `FILE`",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "upload all files under `DIR` recursively",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "prepend `PREFIX` to every object name",
			},
			&cli.BoolFlag{
				Name:  "nokeepdir",
				Usage: "store objects under their base name, dropping directories",
			},
			&cli.BoolFlag{
				Name:  "nopbar",
				Usage: "disable the progress bar",
			},
		},
		Action: func(c *cli.Context) error {
			bucket := c.Args().First()
			if bucket == "" {
				printError("Error: bucket name is required")
				return cli.Exit("", 1)
			}

			file := c.String("file")
			dir := c.String("dir")
			if (file == "") == (dir == "") {
				printError("Error: specify either --file or --dir")
				return cli.Exit("", 1)
			}

			client, err := newClient(c, settings)
			if err != nil {
				printError("Error: %v", err)
				return cli.Exit("", 1)
			}

			if err := requireBucket(c, client, bucket); err != nil {
				return err
			}

			prefix := c.String("prefix")
			stripDirs := c.Bool("nokeepdir")

			var items []uploadItem
			if file != "" {
				info, err := os.Stat(file)
				if err != nil || !info.Mode().IsRegular() {
					printError("Error: File '%s' does not exist or is not a file.", file)
					return cli.Exit("", 1)
				}

				absPath, err := filepath.Abs(file)
				if err != nil {
					printError("Error: %v", err)
					return cli.Exit("", 1)
				}
				items = append(items, uploadItem{
					displayPath: file,
					absPath:     absPath,
					key:         transfer.KeyForPath(file, prefix, stripDirs),
				})
			} else {
				info, err := os.Stat(dir)
				if err != nil || !info.IsDir() {
					printError("Error: Directory '%s' not found", dir)
					return cli.Exit("", 1)
				}

				absRoot, err := filepath.Abs(dir)
				if err != nil {
					printError("Error: %v", err)
					return cli.Exit("", 1)
				}

				descriptors, err := transfer.ListLocalFiles(c.Context, billy.NewOSFS("/"), absRoot)
				if err != nil {
					printError("Error: %v", err)
					return cli.Exit("", 1)
				}

				for _, d := range descriptors {
					rel, err := filepath.Rel(absRoot, d.LocalPath)
					if err != nil {
						printError("Error: %v", err)
						return cli.Exit("", 1)
					}
					// Keys derive from the path as the user typed it
					keySource := filepath.Join(dir, rel)
					items = append(items, uploadItem{
						displayPath: keySource,
						absPath:     d.LocalPath,
						key:         transfer.KeyForPath(keySource, prefix, stripDirs),
					})
				}
			}

			if len(items) == 0 {
				printWarn("No files found to upload.")
				return nil
			}

			single := file != ""
			for _, item := range items {
				printMsg("Uploading file %s with object name %s", item.displayPath, item.key)

				var opts []s3types.UploadOption
				if !c.Bool("nopbar") {
					opts = append(opts, s3client.WithProgress(newProgressBarTracker(filepath.Base(item.displayPath))))
				}

				result, err := client.UploadFile(c.Context, bucket, item.key, item.absPath, opts...)
				if err != nil {
					fatal := single
					switch {
					case errors.Is(err, os.ErrPermission) || s3errors.IsAccessDenied(err):
						printError("Error: permission denied to read file %s", item.displayPath)
					case errors.Is(err, os.ErrNotExist):
						printError("Error: File '%s' not found", item.displayPath)
					default:
						printError("Error: %v", err)
						fatal = true
					}
					if fatal {
						return cli.Exit("", 1)
					}
					continue
				}

				printSuccess("  - Upload completed successfully")
				printMsg("  - Elapsed time %s", format.Seconds(result.Duration))
			}
			return nil
		},
	}
}

func newDownloadCommand(settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "download",
		Usage:     "download objects from a bucket",
		ArgsUsage: "BUCKET",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "download a single object `KEY`",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "download every object whose key starts with `PREFIX`",
			},
			&cli.StringFlag{
				Name:    "localdir",
				Aliases: []string{"l"},
				Usage:   "destination `DIR` for downloaded files",
				Value:   ".",
			},
			&cli.BoolFlag{
				Name:    "overwrite",
				Aliases: []string{"o"},
				Usage:   "replace local files that already exist",
			},
			&cli.StringFlag{
				Name:    "versionid",
				Aliases: []string{"v"},
				Usage:   "download the specific `VERSION` of the object",
			},
			&cli.BoolFlag{
				Name:  "nopbar",
				Usage: "disable the progress bar",
			},
		},
		Action: func(c *cli.Context) error {
			bucket := c.Args().First()
			if bucket == "" {
				printError("Error: bucket name is required")
				return cli.Exit("", 1)
			}

			file := c.String("file")
			prefix := c.String("prefix")
			if (file == "") == (prefix == "") {
				printError("Error: specify either --file or --prefix")
				return cli.Exit("", 1)
			}

			versionID := c.String("versionid")
			if versionID != "" && file == "" {
				printError("Error: --versionid requires --file")
				return cli.Exit("", 1)
			}

			client, err := newClient(c, settings)
			if err != nil {
				printError("Error: %v", err)
				return cli.Exit("", 1)
			}

			if err := requireBucket(c, client, bucket); err != nil {
				return err
			}

			localDir := c.String("localdir")
			if info, err := os.Stat(localDir); err != nil || !info.IsDir() {
				printError("Error: local path '%s' is not a valid directory", localDir)
				return cli.Exit("", 1)
			}

			overwrite := c.Bool("overwrite")
			noPbar := c.Bool("nopbar")

			if file != "" {
				ok, err := downloadAndSaveObject(c, client, bucket, file, versionID, localDir, overwrite, noPbar)
				if err != nil {
					printError("Error: %v", err)
					return cli.Exit("", 1)
				}
				if !ok {
					return cli.Exit("", 1)
				}
				return nil
			}

			printMsg("Downloading all objects with prefix '%s'", prefix)
			objects, err := client.ListObjects(c.Context, bucket, s3client.WithPrefix(prefix))
			if err != nil {
				printError("Error listing objects with prefix: %v", err)
				return cli.Exit("", 1)
			}
			if len(objects) == 0 {
				printWarn("No objects found with prefix '%s'", prefix)
				return nil
			}

			for _, obj := range objects {
				if _, err := downloadAndSaveObject(c, client, bucket, obj.Key, "", localDir, overwrite, noPbar); err != nil {
					printError("Error: %v", err)
					return cli.Exit("", 1)
				}
			}
			return nil
		},
	}
}

// downloadAndSaveObject fetches one object into localDir, reporting
// per-object failures itself. ok is false when a reported recoverable
// failure occurred; a non-nil error means the whole command should
// stop.
func downloadAndSaveObject(c *cli.Context, client *s3client.Client, bucket, key, versionID, localDir string, overwrite, noPbar bool) (bool, error) {
	destPath := transfer.DestinationPath(localDir, key)
	printMsg("Downloading object %s to path %s", key, destPath)

	if !overwrite && fileExists(destPath) {
		printError("Error: File %s exists. Use --overwrite to replace it.", destPath)
		return false, nil
	}

	absDest, err := filepath.Abs(destPath)
	if err != nil {
		return false, err
	}

	var opts []s3types.DownloadOption
	if versionID != "" {
		opts = append(opts, s3client.WithDownloadVersion(versionID))
	}
	if !noPbar {
		opts = append(opts, s3client.WithDownloadProgress(newProgressBarTracker(filepath.Base(key))))
	}

	result, err := client.DownloadFile(c.Context, bucket, key, absDest, opts...)
	if err != nil {
		switch {
		case s3errors.IsObjectNotFound(err):
			printError("Error:  object '%s' not found.", key)
			return false, nil
		case errors.Is(err, os.ErrPermission) || s3errors.IsAccessDenied(err):
			printError("Error: Permission denied to write file %s", destPath)
			return false, nil
		}
		return false, err
	}

	printSuccess("  - Download completed successfully")
	printMsg("  - Elapsed time %s", format.Seconds(result.Duration))
	return true, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
