package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const envTemplate = `# Database connection
DB_DRIVER=mysql
DB_SERVER=localhost
DB_PORT=3306
DB_USERNAME=root
DB_PASSWORD=
DB_DATABASE=

# Optional, defaults to DB_DATABASE (or "public" for postgres)
# DB_SCHEMA=

# Package the generated classes are placed under, e.g. com.example.domain
BASE_PACKAGE=
`

const prefixTemplate = `{
}
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .env template and an empty prefix file",
	Long: `Create the files entigen reads in the current directory:

  .env                   connection settings and BASE_PACKAGE
  fixed_table_name.json  table prefix replacements, e.g. {"usr": "user"}

Existing files are left untouched.
`,
	Run: func(cmd *cobra.Command, args []string) {
		envPath := envFile
		if envPath == "" {
			envPath = ".env"
		}

		created := 0
		for _, f := range []struct{ path, content string }{
			{envPath, envTemplate},
			{prefixFile, prefixTemplate},
		} {
			ok, err := createIfMissing(f.path, f.content)
			if err != nil {
				exitWithError("Creating "+f.path, err)
			}
			if ok {
				fmt.Printf("✅ Created %s\n", f.path)
				created++
			} else {
				fmt.Printf("ℹ️  %s already exists, skipped\n", f.path)
			}
		}

		if created > 0 {
			fmt.Println("📝 Fill in the database settings and BASE_PACKAGE")
			fmt.Println("🚀 Run 'entigen generate' to create the classes")
		}
	},
}

// createIfMissing writes content to path unless the file exists.
func createIfMissing(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, err
	}
	return true, nil
}
