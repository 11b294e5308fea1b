package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newLikeCmd(opts *rootOptions) *cobra.Command {
	var force bool
	c := &cobra.Command{
		Use:   "like",
		Short: "Add one like, unless this machine already liked recently",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := opts.marker()
			if err != nil {
				return err
			}
			now := time.Now()
			if !force {
				ok, err := m.CanLike(now)
				if err != nil {
					return err
				}
				if !ok {
					at, _, _ := m.LikedAt()
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Already liked at %s; use --force to like again\n", at.Local().Format(time.RFC1123))
					return nil
				}
			}
			n, err := getClient(cmd).Like(cmd.Context())
			if err != nil {
				return err
			}
			if err := m.Record(now); err != nil {
				cmd.PrintErrf("warning: could not save like marker: %v\n", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Thanks! Likes: %d\n", n)
			return nil
		},
	}
	c.Flags().BoolVar(&force, "force", false, "like even if the local marker is still fresh")
	return c
}
