package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Manage topic contexts for automatic generation",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all contexts",
		Run:   runContextList,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create [name]",
		Short: "Create a new context template",
		Args:  cobra.ExactArgs(1),
		Run:   runContextCreate,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [name]",
		Short: "Show context details",
		Args:  cobra.ExactArgs(1),
		Run:   runContextShow,
	})

	del := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a context",
		Args:  cobra.ExactArgs(1),
		Run:   runContextDelete,
	}
	del.Flags().Bool("yes", false, "Confirm deletion")
	cmd.AddCommand(del)

	RootCmd.AddCommand(cmd)
}

func runContextList(cmd *cobra.Command, args []string) {
	cs := contextStore(loadConfig())

	names, err := cs.List()
	if err != nil {
		exitErr("list contexts", err)
	}
	if len(names) == 0 {
		fmt.Println("No contexts found.")
		return
	}

	fmt.Println("\n=== Available Contexts ===")
	fmt.Println()
	for _, name := range names {
		c, err := cs.Load(name)
		if err != nil {
			log.WithField("context", name).WithError(err).Warn("skipping unreadable context")
			continue
		}
		fmt.Printf("%s\n", name)
		fmt.Printf("   Topic: %s\n", orNA(c.Topic))
		fmt.Printf("   Themes: %d | Recent posts: %d\n", len(c.Themes), len(c.RecentAngles))
		fmt.Println()
	}
	fmt.Println("Use 'postgen context show <name>' for details")
}

func runContextCreate(cmd *cobra.Command, args []string) {
	name := args[0]
	cs := contextStore(loadConfig())

	if err := cs.Create(name); err != nil {
		exitErr("create context", err)
	}

	fmt.Printf("✓ Created new context template: %s\n", name)
	fmt.Println("\nPlease edit the file to customize your context:")
	fmt.Println("  - Fill in the topic and description")
	fmt.Println("  - Add relevant themes and key messages")
	fmt.Println("  - Set your target audience")
	fmt.Println("\nThen generate posts with:")
	fmt.Printf("  postgen generate --context %s\n", name)
}

func runContextShow(cmd *cobra.Command, args []string) {
	name := args[0]
	c, err := contextStore(loadConfig()).Load(name)
	if err != nil {
		exitErr("show context", err)
	}

	fmt.Println("\n" + ruler)
	fmt.Printf("CONTEXT: %s\n", name)
	fmt.Println(ruler)
	fmt.Printf("\nTopic: %s\n", orNA(c.Topic))
	fmt.Printf("Description: %s\n", orNA(c.Description))
	fmt.Printf("Target Audience: %s\n", orNA(c.TargetAudience))
	fmt.Printf("Posting Frequency: %s\n", orNA(c.PostingFrequency))

	fmt.Printf("\nThemes (%d):\n", len(c.Themes))
	for _, t := range c.Themes {
		fmt.Printf("  - %s\n", t)
	}

	fmt.Printf("\nKey Messages (%d):\n", len(c.KeyMessages))
	for _, m := range c.KeyMessages {
		fmt.Printf("  - %s\n", m)
	}

	fmt.Printf("\nRecent Angles Covered (%d):\n", len(c.RecentAngles))
	if len(c.RecentAngles) == 0 {
		fmt.Println("  None yet")
	}
	for _, a := range c.RecentAngles {
		fmt.Printf("  - %s\n", a)
	}

	fmt.Println("\n" + ruler)
}

func runContextDelete(cmd *cobra.Command, args []string) {
	name := args[0]
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		exitErr("delete context", fmt.Errorf("refusing to delete %q without --yes", name))
	}

	if err := contextStore(loadConfig()).Delete(name); err != nil {
		exitErr("delete context", err)
	}
	fmt.Printf("✓ Deleted context %q\n", name)
}
