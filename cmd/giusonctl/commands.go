package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/anz-davar/giuson/internal/auth"
	"github.com/anz-davar/giuson/internal/config"
	"github.com/anz-davar/giuson/internal/database"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/anz-davar/giuson/internal/service"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var hrInput service.HRRegistration

var createHRCmd = &cobra.Command{
	Use:   "create-hr",
	Short: "Create an HR account",
	Long:  `Create an HR account. Use this to bootstrap the first HR user of a deployment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		hasher := auth.NewPasswordHasher()
		authService := service.NewAuthService(
			service.NewAccountFactory(hasher, service.NewPhoneNormalizer(cfg.Phone.DefaultRegion)),
			hasher,
			auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod),
		)

		reg := hrInput
		reg.Role = string(model.RoleHR)

		var account *model.Account
		err = repository.WithinTransaction(cmd.Context(), repository.NewStore(db), func(uow repository.UnitOfWork) error {
			var err error
			account, err = authService.Register(cmd.Context(), uow, &reg)
			return err
		})
		if err != nil {
			return err
		}

		color.Green("Created HR user %s (user %d, hr %d)", account.User.Email, account.User.ID, account.Profile.ProfileID())
		return nil
	},
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List all jobs with their vacancies and application counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		store := repository.NewStore(db)
		hrService := service.NewHRService(nil, nil)
		jobs, err := hrService.Jobs(cmd.Context(), store.Session(cmd.Context()))
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			color.Yellow("No jobs found")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tCOMMANDER\tSTATUS\tVACANT\tAPPLICATIONS")
		for _, job := range jobs {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n",
				job.ID, job.Title, job.CommanderName, statusColor(job.Status), job.VacantPositions, job.ApplicationsCount)
		}
		return tw.Flush()
	},
}

func statusColor(status model.JobStatus) string {
	switch status {
	case model.JobStatusOpen:
		return color.GreenString(string(status))
	case model.JobStatusFilled:
		return color.CyanString(string(status))
	default:
		return color.YellowString(string(status))
	}
}

var (
	exportJobID       uint
	exportCommanderID uint
	exportOut         string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the applications of a job as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		uow := repository.NewStore(db).Session(cmd.Context())
		commanderID := exportCommanderID
		if commanderID == 0 {
			job, err := uow.Jobs().FindByID(cmd.Context(), exportJobID)
			if err != nil {
				return err
			}
			commanderID = job.CommanderID
		}

		directory := service.NewDirectoryService(service.NewPhoneNormalizer(""))
		data, err := directory.ExportApplicationsCSV(cmd.Context(), uow, commanderID, exportJobID)
		if err != nil {
			return err
		}

		if exportOut == "" || exportOut == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o640); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}
		color.Green("Wrote %s", exportOut)
		return nil
	},
}

func init() {
	createHRCmd.Flags().StringVar(&hrInput.Email, "email", "", "Login email")
	createHRCmd.Flags().StringVar(&hrInput.Password, "password", "", "Password, at least 8 characters")
	createHRCmd.Flags().StringVar(&hrInput.Name, "name", "", "Display name")
	createHRCmd.Flags().StringVar(&hrInput.Department, "department", "", "Department")
	createHRCmd.Flags().StringVar(&hrInput.Phone, "phone", "", "Phone number")
	_ = createHRCmd.MarkFlagRequired("email")
	_ = createHRCmd.MarkFlagRequired("password")
	_ = createHRCmd.MarkFlagRequired("name")

	exportCmd.Flags().UintVar(&exportJobID, "job", 0, "Job id")
	exportCmd.Flags().UintVar(&exportCommanderID, "commander", 0, "Owning commander id (defaults to the job's owner)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file, stdout when empty")
	_ = exportCmd.MarkFlagRequired("job")
}
