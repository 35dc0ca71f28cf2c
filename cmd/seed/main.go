package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mansi2425/punjab-alumni-connect/internal/config"
	"github.com/mansi2425/punjab-alumni-connect/internal/db"
	"github.com/mansi2425/punjab-alumni-connect/internal/logger"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/repository"
)

// SeedFile is the layout of the -file argument.
type SeedFile struct {
	Institutions []SeedInstitution `json:"institutions"`
	Users        []SeedUser        `json:"users"`
}

// SeedInstitution is an approved institution, matched by name.
type SeedInstitution struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	ContactEmail  string `json:"contact_email"`
}

// SeedUser is one user of the seed file. Institution names an institution
// of the same file or one already stored.
type SeedUser struct {
	Username    string        `json:"username"`
	Email       string        `json:"email"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Role        model.Role    `json:"role"`
	IsApproved  bool          `json:"is_approved"`
	Institution string        `json:"institution"`
	Profile     model.Profile `json:"profile"`
}

func main() {
	file := flag.String("file", "", "JSON file with institutions and users; the demo set is used when empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.NewLogger(cfg.Env)
	defer func() { _ = log.Sync() }()

	log.Info("starting seed script")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	data := demoData()
	if *file != "" {
		data, err = loadSeedFile(*file)
		if err != nil {
			log.Fatal("failed to read seed file", zap.String("file", *file), zap.Error(err))
		}
	}
	log.Info("loaded seed data",
		zap.Int("institutions", len(data.Institutions)),
		zap.Int("users", len(data.Users)),
	)

	ctx := context.Background()
	institutionIDs, err := seedInstitutions(ctx, repository.NewInstitutionRepository(gormDB), data.Institutions)
	if err != nil {
		log.Fatal("failed to seed institutions", zap.Error(err))
	}

	created, updated, err := seedUsers(ctx, repository.NewUserRepository(gormDB), institutionIDs, data.Users)
	if err != nil {
		log.Fatal("failed to seed users", zap.Error(err))
	}

	log.Info("seed completed",
		zap.Int("institutions", len(institutionIDs)),
		zap.Int("created", created),
		zap.Int("updated", updated),
		zap.Int("skipped", len(data.Users)-created-updated),
	)
}

func loadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data SeedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &data, nil
}

// seedInstitutions creates the missing institutions as approved and returns
// the ids of every approved institution by name.
func seedInstitutions(ctx context.Context, repo repository.InstitutionRepository, insts []SeedInstitution) (map[string]uint, error) {
	approved, err := repo.ListByStatus(ctx, model.InstitutionStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("error listing institutions: %w", err)
	}
	ids := make(map[string]uint, len(approved)+len(insts))
	for _, inst := range approved {
		ids[inst.Name] = inst.ID
	}

	for _, si := range insts {
		if si.Name == "" || ids[si.Name] != 0 {
			continue
		}
		inst := &model.Institution{
			Name:          si.Name,
			Address:       si.Address,
			ContactPerson: si.ContactPerson,
			ContactEmail:  strings.ToLower(si.ContactEmail),
			Status:        model.InstitutionStatusApproved,
		}
		if err := repo.Create(ctx, inst); err != nil {
			return nil, fmt.Errorf("error creating institution %s: %w", si.Name, err)
		}
		ids[inst.Name] = inst.ID
	}
	return ids, nil
}

// seedUsers creates missing users and refreshes existing ones by username.
// Entries with an unknown role or institution are skipped.
func seedUsers(ctx context.Context, repo repository.UserRepository, institutionIDs map[string]uint, users []SeedUser) (created int, updated int, err error) {
	for _, su := range users {
		if !su.Role.Valid() || su.Username == "" {
			continue
		}
		if su.Institution != "" {
			id, ok := institutionIDs[su.Institution]
			if !ok {
				continue
			}
			su.Profile.InstitutionID = &id
		}

		existing, err := repo.FindByUsername(ctx, su.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, fmt.Errorf("error checking user %s: %w", su.Username, err)
		}

		if existing == nil {
			user := &model.User{
				Username:   su.Username,
				Email:      su.Email,
				FirstName:  su.FirstName,
				LastName:   su.LastName,
				Role:       su.Role,
				IsApproved: su.IsApproved,
			}
			profile := su.Profile
			if err := repo.CreateWithProfile(ctx, user, &profile); err != nil {
				return created, updated, fmt.Errorf("error creating user %s: %w", su.Username, err)
			}
			created++
			continue
		}

		existing.Email = su.Email
		existing.FirstName = su.FirstName
		existing.LastName = su.LastName
		existing.Role = su.Role
		profile := su.Profile
		if existing.Profile != nil {
			profile.ID = existing.Profile.ID
		}
		existing.Profile = &profile
		if err := repo.Save(ctx, existing); err != nil {
			return created, updated, fmt.Errorf("error updating user %s: %w", su.Username, err)
		}
		if err := repo.SetApproved(ctx, existing.ID, su.IsApproved); err != nil {
			return created, updated, fmt.Errorf("error approving user %s: %w", su.Username, err)
		}
		updated++
	}
	return created, updated, nil
}

func demoData() *SeedFile {
	year := func(y int) *int { return &y }
	return &SeedFile{
		Institutions: []SeedInstitution{
			{Name: "GNDEC", Address: "Gill Park, Ludhiana", ContactPerson: "Registrar", ContactEmail: "registrar@gndec.ac.in"},
			{Name: "PEC", Address: "Sector 12, Chandigarh", ContactPerson: "Dean Alumni", ContactEmail: "alumni@pec.edu.in"},
			{Name: "Thapar", Address: "Bhadson Road, Patiala", ContactPerson: "Alumni Office", ContactEmail: "alumni@thapar.edu"},
		},
		Users: []SeedUser{
			{
				Username: "alice", Email: "alice@example.com", FirstName: "Alice", Role: model.RoleStudent, IsApproved: true, Institution: "GNDEC",
				Profile: model.Profile{Department: "CSE", Skills: "Python, Django, React", EnrollmentNumber: "GND-2022-041"},
			},
			{
				Username: "bob", Email: "bob@example.com", FirstName: "Bob", Role: model.RoleAlumni, IsApproved: true, Institution: "GNDEC",
				Profile: model.Profile{Department: "CSE", Company: "Infosys", Skills: "python, django, aws", GraduationYear: year(2018)},
			},
			{
				Username: "carol", Email: "carol@example.com", FirstName: "Carol", Role: model.RoleAlumni, IsApproved: true, Institution: "PEC",
				Profile: model.Profile{Department: "ECE", Company: "Google", Skills: "react, typescript", GraduationYear: year(2016)},
			},
			{
				Username: "dave", Email: "dave@example.com", FirstName: "Dave", Role: model.RoleAlumni, IsApproved: true, Institution: "Thapar",
				Profile: model.Profile{Department: "ME", Skills: "cad, matlab", GraduationYear: year(2015)},
			},
			{
				Username: "erin", Email: "erin@example.com", FirstName: "Erin", Role: model.RoleAlumni, IsApproved: false, Institution: "GNDEC",
				Profile: model.Profile{Department: "CSE", Skills: "go, kubernetes", GraduationYear: year(2020)},
			},
			{
				Username: "gndec-admin", Email: "registrar@gndec.ac.in", FirstName: "Registrar", Role: model.RoleInstitutionAdmin, IsApproved: true, Institution: "GNDEC",
			},
			{
				Username: "admin", Email: "admin@example.com", FirstName: "Admin", Role: model.RoleSuperAdmin, IsApproved: true,
			},
		},
	}
}
