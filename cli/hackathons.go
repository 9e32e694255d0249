package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/hackathons/domain"
	"github.com/xy-planning-network/hackathons/hackathon"
)

// store builds a *hackathon.Store calling the backend with the kept token, if any.
func (a *app) store() (*hackathon.Store, error) {
	sess, err := a.session()
	if err != nil {
		return nil, err
	}

	token, _ := sess.Token()
	return hackathon.NewStore(a.client.WithToken(token), hackathon.WithLogger(a.l)), nil
}

// readForm decodes data as a JSON object; "-" reads it from in.
func readForm(data string, in io.Reader) (domain.Form, error) {
	var r io.Reader = strings.NewReader(data)
	if data == "-" {
		r = in
	}

	var form domain.Form
	if err := json.NewDecoder(r).Decode(&form); err != nil {
		return nil, fmt.Errorf("--data is not a JSON object: %w", err)
	}

	if form == nil {
		return nil, fmt.Errorf("--data is not a JSON object: null")
	}

	return form, nil
}

func parseID(arg string) (domain.ID, error) {
	id, err := domain.ParseID(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not a hackathon id", arg)
	}

	return id, nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List hackathons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}

			if err := s.List(cmd.Context()); err != nil {
				return err
			}

			hs, _ := s.Hackathons()
			return a.print(hs)
		},
	}
}

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show a single hackathon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := a.store()
			if err != nil {
				return err
			}

			if err := s.View(cmd.Context(), id); err != nil {
				return err
			}

			h, _ := s.Hackathon()
			return a.print(h)
		},
	}
}

func (a *app) createCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hackathon, then list them all",
		Example: `  hackathons create --data '{"name":"Spring Hack","theme":"AI","description":"48 hours"}'
  cat hackathon.json | hackathons create --data -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := readForm(data, cmd.InOrStdin())
			if err != nil {
				return err
			}

			s, err := a.store()
			if err != nil {
				return err
			}

			if err := s.Create(cmd.Context(), form); err != nil {
				return err
			}

			hs, _ := s.Hackathons()
			return a.print(hs)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", `hackathon as a JSON object, or "-" to read it from stdin`)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (a *app) updateCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Partially update a hackathon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			form, err := readForm(data, cmd.InOrStdin())
			if err != nil {
				return err
			}

			s, err := a.store()
			if err != nil {
				return err
			}

			if err := s.Update(cmd.Context(), id, form); err != nil {
				return err
			}

			return a.print(map[string]any{"updated": id})
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", `fields to change as a JSON object, or "-" to read them from stdin`)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a hackathon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := a.store()
			if err != nil {
				return err
			}

			if err := s.Delete(cmd.Context(), id); err != nil {
				return err
			}

			return a.print(map[string]any{"deleted": id})
		},
	}
}
