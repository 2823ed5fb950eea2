package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCategoriesCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category taxonomy",
	}
	cmd.AddCommand(newCategoriesListCommand(dir))
	cmd.AddCommand(newCategoriesAddCommand(dir))
	cmd.AddCommand(newCategoriesAddSubCommand(dir))
	cmd.AddCommand(newCategoriesRemoveCommand(dir))
	cmd.AddCommand(newCategoriesRemoveSubCommand(dir))
	return cmd
}

func newCategoriesListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List main categories and their subcategories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			for _, node := range w.data.Categories() {
				color.New(color.Bold).Println(node.Name)
				for _, sub := range node.Subcategories {
					fmt.Printf("  %s\n", sub)
				}
			}
			return nil
		},
	}
}

func newCategoriesAddCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a main category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			if _, err := w.data.AddMainCategory(args[0]); err != nil {
				return err
			}
			if err := w.data.SaveCategories(); err != nil {
				return err
			}
			w.audit("categories add", args[0], 1)
			fmt.Printf("Added category %q\n", args[0])
			return nil
		},
	}
}

func newCategoriesAddSubCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add-sub <main> <sub>",
		Short: "Add a subcategory under a main category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			if _, err := w.data.AddSubcategory(args[0], args[1]); err != nil {
				return err
			}
			if err := w.data.SaveCategories(); err != nil {
				return err
			}
			w.audit("categories add-sub", args[0]+"/"+args[1], 1)
			fmt.Printf("Added subcategory %q under %q\n", args[1], args[0])
			return nil
		},
	}
}

func newCategoriesRemoveCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a main category, uncategorizing its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.data.DeleteMainCategory(args[0]); err != nil {
				return err
			}
			// The cascade touches all three blobs.
			if err := saveAll(w); err != nil {
				return err
			}
			w.audit("categories rm", args[0], 1)
			fmt.Printf("Deleted category %q\n", args[0])
			return nil
		},
	}
}

func newCategoriesRemoveSubCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm-sub <main> <sub>",
		Short: "Delete a subcategory, keeping the main on its transactions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.data.DeleteSubcategory(args[0], args[1]); err != nil {
				return err
			}
			if err := saveAll(w); err != nil {
				return err
			}
			w.audit("categories rm-sub", args[0]+"/"+args[1], 1)
			fmt.Printf("Deleted subcategory %q under %q\n", args[1], args[0])
			return nil
		},
	}
}

func saveAll(w *workspace) error {
	if err := w.data.SaveCategories(); err != nil {
		return err
	}
	if err := w.data.SaveHistory(); err != nil {
		return err
	}
	return w.data.SaveMemory()
}
