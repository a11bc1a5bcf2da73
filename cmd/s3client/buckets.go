package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	s3client "github.com/thobiast/s3-client"
	s3errors "github.com/thobiast/s3-client/errors"
	"github.com/thobiast/s3-client/internal/config"
	"github.com/thobiast/s3-client/s3types"
)

func newCreateBucketCommand(settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "createbucket",
		Usage:     "create a new bucket",
		ArgsUsage: "BUCKET",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "versioned",
				Aliases: []string{"v"},
				Usage:   "enable object versioning on the new bucket",
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

			printMsg("Attempting to create bucket '%s'...", bucket)

			exists, err := client.BucketExists(c.Context, bucket)
			if err != nil {
				printError("Error: %v", err)
				return cli.Exit("", 1)
			}
			if exists {
				printError("Error: Bucket '%s' already exists", bucket)
				return cli.Exit("", 1)
			}

			var opts []s3types.BucketOption
			if c.Bool("versioned") {
				opts = append(opts, s3client.WithVersioning(true))
			}

			if err := client.CreateBucket(c.Context, bucket, opts...); err != nil {
				printError("Error creating bucket: %v", err)
				return cli.Exit("", 1)
			}

			printSuccess("Successfully created bucket '%s'", bucket)
			if c.Bool("versioned") {
				printSuccess("  - Versioning enabled for '%s'", bucket)
			}
			return nil
		},
	}
}

func newListBucketsCommand(settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:  "listbuckets",
		Usage: "list all buckets",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "acl",
				Usage: "also show owner and access control grants",
			},
		},
		Action: func(c *cli.Context) error {
			client, err := newClient(c, settings)
			if err != nil {
				printError("Error: %v", err)
				return cli.Exit("", 1)
			}

			buckets, err := client.ListBuckets(c.Context)
			if err != nil {
				printError("Error: %v", err)
				return cli.Exit("", 1)
			}

			for _, bucket := range buckets {
				versioning, err := client.BucketVersioning(c.Context, bucket.Name)
				if err != nil {
					printError("Error: %v", err)
					return cli.Exit("", 1)
				}
				if versioning == "" {
					versioning = "None"
				}

				printAttr("name", bucket.Name)
				printAttr("creation_date", bucket.CreationDate.Format(timeFormat))
				printAttr("versioning_status", versioning)
				fmt.Println()

				if c.Bool("acl") {
					if err := printBucketACL(c, client, bucket.Name); err != nil {
						printError("Error: %v", err)
						return cli.Exit("", 1)
					}
				}
			}
			return nil
		},
	}
}

func printBucketACL(c *cli.Context, client *s3client.Client, bucket string) error {
	acl, err := client.BucketACL(c.Context, bucket)
	if err != nil {
		return err
	}

	printMsg("  acl:")
	fmt.Printf("    owner: %s\n", acl.Owner)
	for _, grant := range acl.Grants {
		fmt.Printf("    grantee: %s (%s) permission: %s\n", grant.Grantee, grant.GranteeType, grant.Permission)
	}
	return nil
}

func newDeleteBucketCommand(settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "deletebucket",
		Usage:     "delete a bucket",
		ArgsUsage: "BUCKET",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "delete all current objects before removing the bucket",
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

			exists, err := client.BucketExists(c.Context, bucket)
			if err != nil {
				printError("Error: %v", err)
				return cli.Exit("", 1)
			}
			if !exists {
				printError("Error: Bucket '%s' not found", bucket)
				return cli.Exit("", 1)
			}

			printAlert("!!! WARNING: This will permanently delete the bucket '%s'", bucket)
			if !c.Bool("force") {
				printAlert("The bucket must be empty to be deleted")
			}
			printWarn("To confirm, please type the bucket name ('%s') again:", bucket)
			if !confirmBucketName(bucket) {
				return cli.Exit("", 1)
			}

			printMsg("Proceeding with deletion of '%s'...", bucket)

			if c.Bool("force") {
				result, err := client.EmptyBucket(c.Context, bucket)
				if err != nil {
					printError("Error: %v", err)
					return cli.Exit("", 1)
				}
				if len(result.Deleted) > 0 {
					printMsg("Deleted %d object(s) from bucket '%s'", len(result.Deleted), bucket)
				}
				for _, delErr := range result.Errors {
					printError("Error: failed to delete object '%s': %s", delErr.Key, delErr.Message)
				}
			}

			if err := client.DeleteBucket(c.Context, bucket); err != nil {
				switch {
				case s3errors.IsBucketNotEmpty(err):
					printError("Error: Bucket '%s' is not empty", bucket)
				case s3errors.IsBucketNotFound(err):
					printError("Error: Bucket '%s' not found", bucket)
				default:
					printError("Error deleting bucket: %v", err)
				}
				return cli.Exit("", 1)
			}

			printSuccess("Successfully deleted bucket '%s'", bucket)
			return nil
		},
	}
}

// confirmBucketName asks the user to re-type the bucket name. EOF or a
// mismatch cancels the deletion.
func confirmBucketName(bucket string) bool {
	fmt.Print("> ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Println()
		printMsg("Deletion cancelled.")
		return false
	}

	if strings.TrimRight(line, "\r\n") != bucket {
		printError("Bucket name confirmation mismatch. Bucket deletion cancelled.")
		return false
	}

	return true
}
