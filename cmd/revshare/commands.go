package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/revoraorg/librevshare-go/revshare"
)

var (
	pageStart      uint64
	pageLimit      uint64
	blacklistActor string
)

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(offeringsCmd)
	rootCmd.AddCommand(blacklistCmd)
	rootCmd.AddCommand(reportCmd)

	offeringsCmd.AddCommand(offeringsListCmd)
	offeringsCmd.AddCommand(offeringsGetCmd)
	offeringsCmd.AddCommand(offeringsPageCmd)
	offeringsPageCmd.Flags().Uint64Var(&pageStart, "start", 0, "index of the first offering to return")
	offeringsPageCmd.Flags().Uint64Var(&pageLimit, "limit", 0, "page size (0 or >20 means the 20-item maximum)")

	blacklistCmd.AddCommand(blacklistAddCmd)
	blacklistCmd.AddCommand(blacklistRemoveCmd)
	blacklistCmd.AddCommand(blacklistListCmd)
	blacklistCmd.AddCommand(blacklistCheckCmd)
	blacklistCmd.PersistentFlags().StringVar(&blacklistActor, "caller", "", "address performing the mutation (required for add/remove)")
}

func parseAddr(name, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("invalid %s address: %q", name, value)
	}
	return common.HexToAddress(value), nil
}

// offeringJSON is the CLI output shape for one offering.
type offeringJSON struct {
	Issuer          string `json:"issuer"`
	Token           string `json:"token"`
	RevenueShareBps uint32 `json:"revenueShareBps"`
	Status          string `json:"status"`
}

func toOfferingJSON(o revshare.Offering) offeringJSON {
	return offeringJSON{
		Issuer:          o.Issuer.Hex(),
		Token:           o.Token.Hex(),
		RevenueShareBps: o.RevenueShareBps,
		Status:          o.Status.String(),
	}
}

var registerCmd = &cobra.Command{
	Use:   "register <issuer> <token> <bps>",
	Short: "Register a revenue-share offering",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := parseAddr("issuer", args[0])
		if err != nil {
			return err
		}
		token, err := parseAddr("token", args[1])
		if err != nil {
			return err
		}
		bps, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid bps: %q", args[2])
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := reg.RegisterOffering(issuer, token, uint32(bps)); err != nil {
			return err
		}
		logger.Info("offering registered", "issuer", issuer.Hex(), "token", token.Hex(), "bps", bps)
		return nil
	},
}

var offeringsCmd = &cobra.Command{
	Use:   "offerings",
	Short: "Inspect registered offerings",
}

var offeringsListCmd = &cobra.Command{
	Use:   "list <issuer>",
	Short: "List all offering tokens for an issuer in creation order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := parseAddr("issuer", args[0])
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		tokens, err := reg.ListOfferings(issuer)
		if err != nil {
			return err
		}
		hexed := make([]string, 0, len(tokens))
		for _, token := range tokens {
			hexed = append(hexed, token.Hex())
		}
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"issuer": issuer.Hex(),
			"count":  len(hexed),
			"tokens": hexed,
		})
	},
}

var offeringsGetCmd = &cobra.Command{
	Use:   "get <issuer> <token>",
	Short: "Show one offering",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := parseAddr("issuer", args[0])
		if err != nil {
			return err
		}
		token, err := parseAddr("token", args[1])
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		offering, err := reg.GetOffering(issuer, token)
		if err != nil {
			return err
		}
		if offering == nil {
			return fmt.Errorf("no offering for issuer %s token %s", issuer.Hex(), token.Hex())
		}
		return writeJSON(cmd.OutOrStdout(), toOfferingJSON(*offering))
	},
}

var offeringsPageCmd = &cobra.Command{
	Use:   "page <issuer>",
	Short: "Page through an issuer's offerings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := parseAddr("issuer", args[0])
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		page, next, err := reg.GetOfferingsPage(issuer, pageStart, pageLimit)
		if err != nil {
			return err
		}
		offerings := make([]offeringJSON, 0, len(page))
		for _, offering := range page {
			offerings = append(offerings, toOfferingJSON(offering))
		}
		out := map[string]any{
			"issuer":    issuer.Hex(),
			"offerings": offerings,
		}
		if next != nil {
			out["nextCursor"] = *next
		}
		return writeJSON(cmd.OutOrStdout(), out)
	},
}

var blacklistCmd = &cobra.Command{
	Use:   "blacklist",
	Short: "Curate and inspect per-token investor blacklists",
}

// blacklistCaller resolves the --caller flag.
func blacklistCaller() (common.Address, error) {
	if blacklistActor == "" {
		return common.Address{}, fmt.Errorf("--caller is required for blacklist mutations")
	}
	return parseAddr("caller", blacklistActor)
}

var blacklistAddCmd = &cobra.Command{
	Use:   "add <token> <investor>",
	Short: "Add an investor to a token's blacklist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := parseAddr("token", args[0])
		if err != nil {
			return err
		}
		investor, err := parseAddr("investor", args[1])
		if err != nil {
			return err
		}
		caller, err := blacklistCaller()
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := reg.BlacklistAdd(caller, token, investor); err != nil {
			return err
		}
		logger.Info("investor blacklisted", "token", token.Hex(), "investor", investor.Hex())
		return nil
	},
}

var blacklistRemoveCmd = &cobra.Command{
	Use:   "remove <token> <investor>",
	Short: "Remove an investor from a token's blacklist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := parseAddr("token", args[0])
		if err != nil {
			return err
		}
		investor, err := parseAddr("investor", args[1])
		if err != nil {
			return err
		}
		caller, err := blacklistCaller()
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := reg.BlacklistRemove(caller, token, investor); err != nil {
			return err
		}
		logger.Info("investor unblacklisted", "token", token.Hex(), "investor", investor.Hex())
		return nil
	},
}

var blacklistListCmd = &cobra.Command{
	Use:   "list <token>",
	Short: "List all blacklisted investors for a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := parseAddr("token", args[0])
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		listed, err := reg.GetBlacklist(token)
		if err != nil {
			return err
		}
		hexed := make([]string, 0, len(listed))
		for _, addr := range listed {
			hexed = append(hexed, addr.Hex())
		}
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"token":     token.Hex(),
			"count":     len(hexed),
			"blacklist": hexed,
		})
	},
}

var blacklistCheckCmd = &cobra.Command{
	Use:   "check <token> <investor>",
	Short: "Check whether an investor is blacklisted for a token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := parseAddr("token", args[0])
		if err != nil {
			return err
		}
		investor, err := parseAddr("investor", args[1])
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		blocked, err := reg.IsBlacklisted(token, investor)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"token":       token.Hex(),
			"investor":    investor.Hex(),
			"blacklisted": blocked,
		})
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <issuer> <token> <amount> <period>",
	Short: "Emit a revenue report notification with the current blacklist snapshot",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := parseAddr("issuer", args[0])
		if err != nil {
			return err
		}
		token, err := parseAddr("token", args[1])
		if err != nil {
			return err
		}
		amount, ok := new(big.Int).SetString(args[2], 10)
		if !ok {
			return fmt.Errorf("invalid amount: %q", args[2])
		}
		period, err := strconv.ParseUint(args[3], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid period: %q", args[3])
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := reg.ReportRevenue(issuer, token, amount, period); err != nil {
			return err
		}
		logger.Info("revenue reported",
			"issuer", issuer.Hex(), "token", token.Hex(),
			"amount", amount.String(), "period", period)
		return nil
	},
}
