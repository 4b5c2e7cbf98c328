package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VillePajala/linkedin-post-generator/internal/convert"
	"github.com/VillePajala/linkedin-post-generator/internal/model"
	"github.com/VillePajala/linkedin-post-generator/internal/posts"
)

func init() {
	cmd := &cobra.Command{
		Use:   "convert [dir]",
		Short: "Convert LinkedIn Analytics Excel exports to JSON records",
		Long:  "Convert every .xlsx export in the examples directory (or the given dir) to per-post JSON records plus a combined all_posts.json. Embedded images are extracted alongside.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runConvert,
	}

	RootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	dir := resolvePath(cfg.Paths.Examples)
	if len(args) > 0 {
		dir = args[0]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		exitErr("read examples dir", err)
	}

	var workbooks []string
	for _, e := range entries {
		name := strings.ToLower(e.Name())
		if !e.IsDir() && (strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls")) {
			workbooks = append(workbooks, e.Name())
		}
	}
	if len(workbooks) == 0 {
		fmt.Println("No Excel files found in", dir)
		return
	}

	fmt.Printf("Found %d Excel file(s)\n", len(workbooks))
	imagesDir := filepath.Join(dir, "images")

	var converted []*model.Post
	for _, name := range workbooks {
		path := filepath.Join(dir, name)

		post, err := convert.File(path)
		if err != nil {
			log.WithField("file", name).WithError(err).Warn("skipping workbook")
			continue
		}

		images, err := convert.ExtractImages(path, imagesDir, post.PostID)
		if err != nil {
			log.WithField("file", name).WithError(err).Warn("could not extract images")
		}
		if len(images) > 0 {
			post.Characteristics.ImageFiles = images
			post.Characteristics.HasImage = true
			if post.Characteristics.Type == model.TypeTextOnly || post.Characteristics.Type == model.TypeLink {
				post.Characteristics.Type = model.TypeImage
			}
			fmt.Printf("  extracted %d image(s) from %s\n", len(images), name)
		}

		outName := posts.Filename(post)
		if err := posts.Save(filepath.Join(dir, outName), post); err != nil {
			exitErr("write record", err)
		}
		fmt.Printf("✓ Created: %s\n", outName)
		converted = append(converted, post)
	}

	if len(converted) > 0 {
		if err := posts.SaveAll(dir, converted); err != nil {
			exitErr("write combined file", err)
		}
		fmt.Printf("\n✓ Created combined file: %s with %d posts\n", posts.CombinedFile, len(converted))
	}

	fmt.Printf("\n✓ Conversion complete! Processed %d posts\n", len(converted))
}
