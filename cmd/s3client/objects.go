package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/urfave/cli/v2"

	s3client "github.com/thobiast/s3-client"
	s3errors "github.com/thobiast/s3-client/errors"
	"github.com/thobiast/s3-client/internal/config"
	"github.com/thobiast/s3-client/s3types"
)

func newListObjCommand(settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "listobj",
		Usage:     "list objects stored in a bucket",
		ArgsUsage: "BUCKET",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "maximum `N` of entries to return",
			},
			&cli.BoolFlag{
				Name:    "table",
				Aliases: []string{"t"},
				Usage:   "render the listing as a table",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "only list keys starting with `PREFIX`",
			},
			&cli.BoolFlag{
				Name:    "versions",
				Aliases: []string{"v"},
				Usage:   "list all object versions and delete markers",
			},
		},
		Action: func(c *cli.Context) error {
			bucket := c.Args().First()
			if bucket == "" {
				printError("Error: bucket name is required")
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

			var opts []s3types.ListOption
			if prefix := c.String("prefix"); prefix != "" {
				opts = append(opts, s3client.WithPrefix(prefix))
			}
			if limit := c.Int("limit"); limit > 0 {
				opts = append(opts, s3client.WithLimit(limit))
			}

			withVersions := c.Bool("versions")

			var objects []s3types.Object
			if withVersions {
				objects, err = client.ListObjectVersions(c.Context, bucket, opts...)
			} else {
				objects, err = client.ListObjects(c.Context, bucket, opts...)
			}
			if err != nil {
				printError("Error: %v", err)
				return cli.Exit("", 1)
			}

			if c.Bool("table") {
				renderObjectTable(bucket, objects, withVersions)
			} else {
				for _, obj := range objects {
					printObjectLine(obj, withVersions)
				}
			}
			return nil
		},
	}
}

func newDeleteObjCommand(settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "deleteobj",
		Usage:     "delete an object stored in a bucket",
		ArgsUsage: "BUCKET OBJECT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "versionid",
				Aliases: []string{"v"},
				Usage:   "delete the specific `VERSION` of the object",
			},
		},
		Action: func(c *cli.Context) error {
			bucket := c.Args().Get(0)
			object := c.Args().Get(1)
			if bucket == "" || object == "" {
				printError("Error: bucket and object names are required")
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

			versionID := c.String("versionid")

			// DeleteObject is idempotent on the service side, check
			// first so a missing object is reported instead of silently
			// succeeding
			var metaOpts []s3types.MetadataOption
			if versionID != "" {
				metaOpts = append(metaOpts, s3client.WithMetadataVersion(versionID))
			}
			if _, err := client.GetMetadata(c.Context, bucket, object, metaOpts...); err != nil {
				switch {
				case s3errors.IsObjectNotFound(err) && versionID != "":
					printError("Error: key '%s' with version '%s' not found", object, versionID)
				case s3errors.IsObjectNotFound(err):
					printError("Error: key '%s' not found", object)
				default:
					printError("Error: %v", err)
				}
				return cli.Exit("", 1)
			}

			var opts []s3types.DeleteOption
			if versionID != "" {
				opts = append(opts, s3client.WithDeleteVersion(versionID))
			}

			result, err := client.DeleteObject(c.Context, bucket, object, opts...)
			if err != nil {
				printError("Error: %v", err)
				return cli.Exit("", 1)
			}

			printSuccess("Object '%s' deleted successfully", object)
			switch {
			case result.DeleteMarker:
				printMsg("  - Delete marker created with version id '%s'", result.VersionID)
			case result.VersionID != "":
				printMsg("  - Deleted version id '%s'", result.VersionID)
			}
			return nil
		},
	}
}

func newMetadataObjCommand(settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "metadataobj",
		Usage:     "show object metadata",
		ArgsUsage: "BUCKET OBJECT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "versionid",
				Aliases: []string{"v"},
				Usage:   "show metadata for the specific `VERSION` of the object",
			},
		},
		Action: func(c *cli.Context) error {
			bucket := c.Args().Get(0)
			object := c.Args().Get(1)
			if bucket == "" || object == "" {
				printError("Error: bucket and object names are required")
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

			versionID := c.String("versionid")

			var opts []s3types.MetadataOption
			if versionID != "" {
				opts = append(opts, s3client.WithMetadataVersion(versionID))
			}

			metadata, err := client.GetMetadata(c.Context, bucket, object, opts...)
			if err != nil {
				switch {
				case s3errors.IsObjectNotFound(err) && versionID != "":
					printError("Error: key '%s' with version '%s' not found", object, versionID)
				case s3errors.IsObjectNotFound(err):
					printError("Error: key '%s' not found", object)
				default:
					printError("Error: %v", err)
				}
				return cli.Exit("", 1)
			}

			printAttrln("content_type", metadata.ContentType)
			printAttrln("content_length", strconv.FormatInt(metadata.ContentLength, 10))
			printAttrln("last_modified", metadata.LastModified.Format(timeFormat))
			printAttrln("e_tag", metadata.ETag)
			if metadata.VersionID != "" {
				printAttrln("version_id", metadata.VersionID)
			}
			if metadata.StorageClass != "" {
				printAttrln("storage_class", metadata.StorageClass)
			}
			if len(metadata.Metadata) > 0 {
				printMsg("metadata:")
				keys := make([]string, 0, len(metadata.Metadata))
				for k := range metadata.Metadata {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Printf("  %s: %s\n", k, metadata.Metadata[k])
				}
			}
			return nil
		},
	}
}
