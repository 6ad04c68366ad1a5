package cli

import (
	bmodel "GameAdmin/internal/building/app/model"
	"GameAdmin/internal/building/domain"
	"GameAdmin/internal/building/infra/seed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) configsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "configs",
		Aliases: []string{"config", "configuration"},
		Short:   "Manage building configurations",
	}
	cmd.AddCommand(a.listCmd(), a.typesCmd(), a.addCmd(), a.deleteCmd(), a.exportCmd(), a.importCmd())
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cs, err := a.client.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderConfigurations(cs))
			return nil
		},
	}
}

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Show building types and which are still available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Types(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTypes("All", resp.All))
			fmt.Fprintln(out, renderTypes("Available", resp.Available))
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var req bmodel.AddReq
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 先在本地做与服务端相同的校验
			req.BuildingType = strings.TrimSpace(req.BuildingType)
			if err := domain.Validate(domain.BuildingType(req.BuildingType), req.BuildingCost, req.ConstructionTime); err != nil {
				return err
			}
			_, msg, err := a.client.Add(cmd.Context(), req)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.BuildingType, "type", "", "building type")
	cmd.Flags().Int64Var(&req.BuildingCost, "cost", 0, "building cost")
	cmd.Flags().IntVar(&req.ConstructionTime, "time", 0, "construction time in seconds (30-1800)")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			msg, err := a.client.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export configurations as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.client.Export(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if err = os.WriteFile(output, raw, 0o644); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Exported to "+output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import configurations from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			records, err := seed.LoadFile(file)
			if err != nil {
				return err
			}
			res, err := a.client.Import(cmd.Context(), records)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Imported: %d created, %d updated", res.Created, res.Updated))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file to import")
	return cmd
}
