package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/thobiast/s3-client/internal/format"
	"github.com/thobiast/s3-client/s3types"
)

// timeFormat renders timestamps in user-facing output
const timeFormat = "2006-01-02 15:04:05"

var (
	msgColor     = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func printMsg(format string, a ...interface{}) {
	_, _ = msgColor.Printf(format+"\n", a...)
}

func printSuccess(format string, a ...interface{}) {
	_, _ = successColor.Printf(format+"\n", a...)
}

func printWarn(format string, a ...interface{}) {
	_, _ = warnColor.Printf(format+"\n", a...)
}

func printError(format string, a ...interface{}) {
	_, _ = errorColor.Fprintf(os.Stderr, format+"\n", a...)
}

// printAlert is for destructive-action warnings that belong on stdout,
// next to the interactive prompt they precede.
func printAlert(format string, a ...interface{}) {
	_, _ = errorColor.Printf(format+"\n", a...)
}

// printAttr prints a colored label followed by its plain value, inline.
// Callers terminate the line with fmt.Println.
func printAttr(label, value string) {
	_, _ = msgColor.Printf("%s", label)
	fmt.Printf(": %s ", value)
}

// printAttrln is printAttr on its own line.
func printAttrln(label, value string) {
	_, _ = msgColor.Printf("%s", label)
	fmt.Printf(": %s\n", value)
}

// printObjectLine prints one listing entry as label: value pairs
func printObjectLine(obj s3types.Object, withVersions bool) {
	printAttr("key", obj.Key)
	printAttr("size", strconv.FormatInt(obj.Size, 10))
	printAttr("storage_class", obj.StorageClass)
	printAttr("e_tag", obj.ETag)
	printAttr("last_modified", obj.LastModified.Format(timeFormat))
	if withVersions {
		printAttr("version_id", obj.VersionID)
		printAttr("is_latest", strconv.FormatBool(obj.IsLatest))
		if obj.IsDeleteMarker {
			printAttr("delete_marker", "true")
		}
	}
	fmt.Println()
}

// renderObjectTable prints the listing as a table with a total-size caption
func renderObjectTable(bucket string, objects []s3types.Object, withVersions bool) {
	printMsg("Objects in S3 Bucket %s", bucket)

	table := tablewriter.NewWriter(os.Stdout)
	header := []string{"Key", "Size", "Storage Class", "ETag", "Last Modified"}
	if withVersions {
		header = append(header, "Version ID", "Is Latest")
	}
	table.SetHeader(header)

	var totalSize int64
	for _, obj := range objects {
		row := []string{
			obj.Key,
			strconv.FormatInt(obj.Size, 10),
			obj.StorageClass,
			obj.ETag,
			obj.LastModified.Format(timeFormat),
		}
		if withVersions {
			row = append(row, obj.VersionID, strconv.FormatBool(obj.IsLatest))
		}
		table.Append(row)
		totalSize += obj.Size
	}

	table.SetCaption(true, fmt.Sprintf("%d object(s)  •  total size %s", len(objects), format.Bytes(totalSize)))
	table.Render()
}
