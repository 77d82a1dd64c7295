package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/models"
	"github.com/gravitrone/salesdesk/internal/schema"
)

// DepartmentCmd returns the `salesdesk department` command group.
func DepartmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "department",
		Aliases: []string{"dept"},
		Short:   "Manage departments",
	}
	cmd.AddCommand(departmentAddCmd())
	cmd.AddCommand(departmentListCmd())
	return cmd
}

func departmentAddCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a department",
		RunE: func(c *cobra.Command, _ []string) error {
			e, err := openEnv(c.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			binder := schema.Department(e.cfg.Format())
			fields := form.NewFields(binder.Specs())

			host := &cliHost{}
			ctrl := form.NewController(binder, fields, nil, host, host, form.WithLogger(e.logger))
			if err := ctrl.Bind(&models.Department{}, e.departments); err != nil {
				return err
			}
			if err := ctrl.Populate(); err != nil {
				return err
			}
			fields[schema.KeyName].SetValue(name)

			if err := submit(contextOf(c), ctrl, host); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "department %q saved\n", name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "department name")
	return cmd
}

func departmentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(c *cobra.Command, _ []string) error {
			e, err := openEnv(c.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			items, err := e.departments.FindAll(contextOf(c))
			if err != nil {
				return fmt.Errorf("list departments: %w", err)
			}
			out := c.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "no departments found")
				return nil
			}
			for _, d := range items {
				fmt.Fprintf(out, "  %4d  %s\n", *d.ID, d.Name)
			}
			return nil
		},
	}
}

func contextOf(c *cobra.Command) context.Context {
	if ctx := c.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
