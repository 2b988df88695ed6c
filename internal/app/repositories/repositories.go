package repositories

import "database/sql"

// Repositories holds all the repository instances
type Repositories struct {
	ProjectRepository       ProjectRepository
	SkillRepository         SkillRepository
	CertificationRepository CertificationRepository
	ExperienceRepository    ExperienceRepository
	EducationRepository     EducationRepository
	MessageRepository       MessageRepository
}

// NewRepositories initializes all repositories over one shared handle
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		ProjectRepository:       NewProjectRepository(db),
		SkillRepository:         NewSkillRepository(db),
		CertificationRepository: NewCertificationRepository(db),
		ExperienceRepository:    NewExperienceRepository(db),
		EducationRepository:     NewEducationRepository(db),
		MessageRepository:       NewMessageRepository(db),
	}
}
