package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/models"
	"github.com/gravitrone/salesdesk/internal/schema"
)

// SellerCmd returns the `salesdesk seller` command group.
func SellerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seller",
		Short: "Manage sellers",
	}
	cmd.AddCommand(sellerAddCmd())
	cmd.AddCommand(sellerListCmd())
	return cmd
}

type sellerFlags struct {
	name       string
	email      string
	birthDate  string
	baseSalary string
	department string
}

func sellerAddCmd() *cobra.Command {
	var f sellerFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a seller",
		Long: "Add a seller. Values go through the same validation as the form:\n" +
			"text that cannot be read as a date or number is treated as missing.",
		RunE: func(c *cobra.Command, _ []string) error {
			e, err := openEnv(c.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()
			ctx := contextOf(c)

			departments, err := e.departments.FindAll(ctx)
			if err != nil {
				return fmt.Errorf("load departments: %w", err)
			}

			binder := schema.Seller(e.cfg.Format())
			fields := schema.SellerFields(binder, departments)
			host := &cliHost{}
			ctrl := form.NewController(binder, fields, nil, host, host, form.WithLogger(e.logger))
			if err := ctrl.Bind(&models.Seller{}, e.sellers); err != nil {
				return err
			}
			if err := ctrl.Populate(); err != nil {
				return err
			}

			fields[schema.KeyName].SetValue(f.name)
			fields[schema.KeyEmail].SetValue(f.email)
			fields[schema.KeyBirthDate].SetValue(f.birthDate)
			fields[schema.KeyBaseSalary].SetValue(f.baseSalary)
			if f.department != "" {
				dept := findDepartment(departments, f.department)
				if dept == nil {
					return fmt.Errorf("unknown department %q", f.department)
				}
				fields[schema.KeyDepartment].SetValue(dept)
			}

			if err := submit(ctx, ctrl, host); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "seller %q saved\n", f.name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "seller name")
	cmd.Flags().StringVarP(&f.email, "email", "e", "", "seller email")
	cmd.Flags().StringVarP(&f.birthDate, "birth-date", "b", "", "birth date in the configured date layout")
	cmd.Flags().StringVarP(&f.baseSalary, "base-salary", "s", "", "base salary")
	cmd.Flags().StringVarP(&f.department, "department", "d", "", "department name (defaults to the first one)")
	return cmd
}

func findDepartment(departments []models.Department, name string) *models.Department {
	for i := range departments {
		if strings.EqualFold(departments[i].Name, name) {
			return &departments[i]
		}
	}
	return nil
}

func sellerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sellers",
		RunE: func(c *cobra.Command, _ []string) error {
			e, err := openEnv(c.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			items, err := e.sellers.FindAll(contextOf(c))
			if err != nil {
				return fmt.Errorf("list sellers: %w", err)
			}
			out := c.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "no sellers found")
				return nil
			}
			format := e.cfg.Format()
			for _, s := range items {
				var birth, salary any
				if s.BirthDate != nil {
					birth = *s.BirthDate
				}
				if s.BaseSalary != nil {
					salary = *s.BaseSalary
				}
				fmt.Fprintf(out, "  %4d  %s  <%s>  %s  %s  %s\n",
					*s.ID, s.Name, s.Email,
					format.Display(form.KindDate, birth),
					format.Display(form.KindDecimal, salary),
					s.Department.Label())
			}
			return nil
		},
	}
}
