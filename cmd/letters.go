package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mnprivacy/shield/internal/brokers"
	"github.com/mnprivacy/shield/internal/letter"
	"github.com/mnprivacy/shield/internal/pdfgen"
)

// lettersCmd generates MCDPA request letters as PDFs without running the server
var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "generate MCDPA request letter PDFs",
	Run: func(cmd *cobra.Command, _ []string) {
		err := generateLetters()
		cobra.CheckErr(err)
	},
}

// init registers the letters command and its flags on the root command
func init() {
	rootCmd.AddCommand(lettersCmd)

	lettersCmd.Flags().StringSlice("broker", nil, "broker id from the directory (repeatable)")
	lettersCmd.Flags().StringSlice("type", nil, "request type: right-to-know, correction, deletion, portability, opt-out, profiling-info, third-party-list")
	lettersCmd.Flags().StringToString("input", nil, "free-text details keyed by request type, e.g. correction='my address is wrong'")
	lettersCmd.Flags().String("name", "", "requester full name")
	lettersCmd.Flags().String("email", "", "requester email address")
	lettersCmd.Flags().String("address", "", "requester street address")
	lettersCmd.Flags().String("city", "", "requester city")
	lettersCmd.Flags().String("state", "MN", "requester state")
	lettersCmd.Flags().String("zip", "", "requester zip code")
	lettersCmd.Flags().String("phone", "", "requester phone number")
	lettersCmd.Flags().String("out", ".", "output directory for generated PDFs")
	lettersCmd.Flags().Bool("merge", false, "also write a single merged PDF")
}

// generateLetters renders one PDF per letter into the output directory
func generateLetters() error {
	user := letter.UserInfo{
		Name:    k.String("name"),
		Email:   k.String("email"),
		Address: k.String("address"),
		City:    k.String("city"),
		State:   k.String("state"),
		Zip:     k.String("zip"),
		Phone:   k.String("phone"),
	}

	if user.Name == "" || user.Email == "" {
		return fmt.Errorf("%w: --name and --email", ErrFlagRequired)
	}

	directory, err := brokers.Load()
	if err != nil {
		return fmt.Errorf("loading broker directory: %w", err)
	}

	selected, err := resolveBrokers(directory, k.Strings("broker"))
	if err != nil {
		return err
	}

	types, inputs, err := resolveTypes(k.Strings("type"), k.StringMap("input"))
	if err != nil {
		return err
	}

	outDir := k.String("out")
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	letters := letter.GenerateAll(selected, types, user, inputs)
	renderer := pdfgen.New()

	for _, content := range letters {
		pdf, err := renderer.Render(content)
		if err != nil {
			return fmt.Errorf("rendering letter for %s: %w", content.RecipientName, err)
		}

		path := filepath.Join(outDir, letter.Filename(content.RecipientName, content.RequestTypes))
		if err := os.WriteFile(path, pdf, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		log.Info().Str("file", path).Str("recipient", content.RecipientName).Msg("wrote letter")
	}

	if k.Bool("merge") && len(letters) > 1 {
		merged, err := renderer.RenderMerged(letters)
		if err != nil {
			return fmt.Errorf("merging letters: %w", err)
		}

		path := filepath.Join(outDir, fmt.Sprintf("MCDPA_Requests_%d_letters.pdf", len(letters)))
		if err := os.WriteFile(path, merged, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		log.Info().Str("file", path).Int("letters", len(letters)).Msg("wrote merged pdf")
	}

	return nil
}

// resolveBrokers maps broker id flags onto directory entries
func resolveBrokers(directory *brokers.Directory, ids []string) ([]letter.DataBroker, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: --broker", ErrFlagRequired)
	}

	selected := make([]letter.DataBroker, 0, len(ids))
	for _, id := range ids {
		broker, ok := directory.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownBrokerID, id)
		}

		selected = append(selected, broker)
	}

	return selected, nil
}

// resolveTypes validates request type codes and their required inputs
func resolveTypes(codes []string, rawInputs map[string]string) ([]letter.RequestType, map[letter.RequestType]string, error) {
	if len(codes) == 0 {
		return nil, nil, fmt.Errorf("%w: --type", ErrFlagRequired)
	}

	types := make([]letter.RequestType, 0, len(codes))
	inputs := make(map[letter.RequestType]string, len(rawInputs))

	for _, code := range codes {
		rt := letter.RequestType(strings.TrimSpace(code))
		if !rt.Valid() {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownType, code)
		}

		if letter.ContentFor(rt).RequiresInput && rawInputs[string(rt)] == "" {
			return nil, nil, fmt.Errorf("%w: --input %s=...", ErrInputRequired, rt)
		}

		if v := rawInputs[string(rt)]; v != "" {
			inputs[rt] = v
		}

		types = append(types, rt)
	}

	return types, inputs, nil
}
