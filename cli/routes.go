package cli

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/hackathons/nav"
)

// A navigation is how "routes" reports a navigation.
type navigation struct {
	Path   string            `json:"path"`
	State  string            `json:"state"`
	Name   string            `json:"name"`
	View   nav.View          `json:"view"`
	Params map[string]string `json:"params"`
}

func (a *app) routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes <path>",
		Short: "Show where navigating to a path ends up with the kept token",
		Example: `  hackathons routes /hackathons/5
  hackathons routes /profile`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session()
			if err != nil {
				return err
			}

			n := nav.NewNavigator(
				nav.DefaultTable(),
				nav.WithGuard(nav.Guard{Validator: a.cfg.Validator()}),
				nav.WithNavLogger(a.l),
			)

			res, err := n.Navigate(args[0], sess)
			if err != nil {
				return err
			}

			return a.print(navigation{
				Path:   res.Path,
				State:  res.State.String(),
				Name:   res.To.Descriptor.Name,
				View:   res.To.Descriptor.View,
				Params: res.To.Params,
			})
		},
	}
}
