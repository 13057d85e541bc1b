package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/SscSPs/ar_statements/internal/core/services"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/spf13/cobra"
)

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Print or email customer statements",
}

var statementPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Render a partner's printable statement to a file",
	Example: `  # PDF statement of partner 7 for the first quarter
  ar_backend statement print --partner 7 --date-from 2024-01-01 --date-to 2024-03-31 --out acme.pdf

  # HTML statement written to stdout
  ar_backend statement print --partner 7 --format html`,
	RunE: runStatementPrint,
}

var statementSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Email a partner's outstanding statement",
	Example: `  # Send to the partner's configured statement address
  ar_backend statement send --partner 7

  # Override the recipients
  ar_backend statement send --partner 7 --to ar@acme.test --cc cfo@acme.test`,
	RunE: runStatementSend,
}

func init() {
	statementCmd.AddCommand(statementPrintCmd, statementSendCmd)

	statementPrintCmd.Flags().Int64("partner", 0, "Partner ID (required)")
	statementPrintCmd.Flags().Int64("company", 0, "Company ID, defaults to DEFAULT_COMPANY_ID")
	statementPrintCmd.Flags().String("date-from", "", "Invoice date lower bound (YYYY-MM-DD)")
	statementPrintCmd.Flags().String("date-to", "", "Invoice date upper bound (YYYY-MM-DD)")
	statementPrintCmd.Flags().String("format", string(render.FormatPDF), "Output format: pdf or html")
	statementPrintCmd.Flags().String("out", "", "Output file, stdout when empty")
	_ = statementPrintCmd.MarkFlagRequired("partner")

	statementSendCmd.Flags().Int64("partner", 0, "Partner ID (required)")
	statementSendCmd.Flags().String("to", "", "Recipient override")
	statementSendCmd.Flags().String("cc", "", "Copy recipient override")
	statementSendCmd.Flags().String("subject", "", "Subject override")
	statementSendCmd.Flags().String("user", "cli", "User recorded as the author of the mail")
	_ = statementSendCmd.MarkFlagRequired("partner")
}

func runStatementPrint(cmd *cobra.Command, args []string) error {
	partnerID, _ := cmd.Flags().GetInt64("partner")
	companyID, _ := cmd.Flags().GetInt64("company")
	dateFrom, _ := cmd.Flags().GetString("date-from")
	dateTo, _ := cmd.Flags().GetString("date-to")
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	req := domain.DueStatementRequest{PartnerID: partnerID, CompanyID: companyID}
	var err error
	if req.DateFrom, err = services.ParseQueryDate(dateFrom, "date-from"); err != nil {
		return err
	}
	if req.DateTo, err = services.ParseQueryDate(dateTo, "date-to"); err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.services.DueStatement.RenderDueStatement(cmd.Context(), req, render.Format(format))
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write statement: %w", err)
	}
	a.logger.Info("Statement written", slog.Int64("partner_id", partnerID), slog.String("path", outPath))
	return nil
}

func runStatementSend(cmd *cobra.Command, args []string) error {
	partnerID, _ := cmd.Flags().GetInt64("partner")
	to, _ := cmd.Flags().GetString("to")
	cc, _ := cmd.Flags().GetString("cc")
	subject, _ := cmd.Flags().GetString("subject")
	userID, _ := cmd.Flags().GetString("user")

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	logger := a.logger.With(slog.Int64("partner_id", partnerID), slog.String("user_id", userID))
	ctx := middleware.WithLogger(middleware.WithUserID(cmd.Context(), userID), logger)

	result, err := a.services.Dispatch.SendStatement(ctx, domain.StatementDispatch{
		PartnerID: partnerID,
		EmailTo:   to,
		EmailCC:   cc,
		Subject:   subject,
		UserID:    userID,
	})
	if err != nil {
		return err
	}

	logger.Info("Statement sent", slog.String("mail_id", result.Mail.ID), slog.String("email_to", result.Mail.EmailTo))
	fmt.Fprintf(cmd.OutOrStdout(), "sent %s to %s\n", result.Attachment.Name, result.Mail.EmailTo)
	return nil
}
