// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./repository.go -destination=../mocks/mock_unit_of_work.go -package=mocks UnitOfWork,Store
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./profile.go -destination=../mocks/mock_profile_repository.go -package=mocks ProfileRepositoryIface
//go:generate mockgen -source=./job.go -destination=../mocks/mock_job_repository.go -package=mocks JobRepositoryIface
//go:generate mockgen -source=./application.go -destination=../mocks/mock_application_repository.go -package=mocks ApplicationRepositoryIface
//go:generate mockgen -source=./interview.go -destination=../mocks/mock_interview_repository.go -package=mocks InterviewRepositoryIface
//go:generate mockgen -source=./resume.go -destination=../mocks/mock_resume_repository.go -package=mocks ResumeRepositoryIface
//go:generate mockgen -source=./application_event.go -destination=../mocks/mock_application_event_repository.go -package=mocks ApplicationEventRepositoryIface
