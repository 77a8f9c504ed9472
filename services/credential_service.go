package services

import (
	"context"
	"strings"

	"virtual-healthcare/models"
	"virtual-healthcare/sequence"

	"golang.org/x/crypto/bcrypt"
)

// DefaultSeedPassword is the shared raw password assigned by Seed. It is
// disclosed once in the seed response so an administrator can hand it out.
const DefaultSeedPassword = "Doctor@123"

const unknownDoctorName = "Unknown Doctor"

// CredentialRepo is what the service needs from the credential collection.
type CredentialRepo interface {
	FindAll(ctx context.Context) ([]models.Credential, error)
	FindByID(ctx context.Context, id int) (*models.Credential, error)
	FindByDoctorID(ctx context.Context, doctorID int) (*models.Credential, error)
	FindByUsername(ctx context.Context, username string) (*models.Credential, error)
	FindByUsernameExcluding(ctx context.Context, username string, excludeID int) (*models.Credential, error)
	MaxID(ctx context.Context) (int, error)
	Create(ctx context.Context, cred *models.Credential) error
	Save(ctx context.Context, cred *models.Credential) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

// DoctorRoster is the read-only doctor lookup the service needs.
type DoctorRoster interface {
	FindByID(ctx context.Context, id int) (*models.Doctor, error)
	FindAllSorted(ctx context.Context) ([]models.Doctor, error)
}

// CredentialView is the redacted read shape: the hash is replaced by a
// presence flag and the doctor's display name is joined in.
type CredentialView struct {
	ID          int    `json:"id"`
	DoctorID    int    `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	Username    string `json:"username"`
	HasPassword bool   `json:"hasPassword"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Identity is the assertion returned on a verified login.
type Identity struct {
	DoctorID   int    `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Username   string `json:"username"`
}

// SeededCredential echoes one bootstrap credential, default password included.
type SeededCredential struct {
	ID              int    `json:"id"`
	DoctorID        int    `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
	Username        string `json:"username"`
	DefaultPassword string `json:"defaultPassword"`
}

// CredentialService owns the doctor login credential lifecycle: creation,
// partial update, deletion, redacted reads, login verification and the
// one-shot bootstrap seeding.
type CredentialService struct {
	creds   CredentialRepo
	doctors DoctorRoster
	alloc   sequence.Allocator
}

func NewCredentialService(creds CredentialRepo, doctors DoctorRoster) *CredentialService {
	return &CredentialService{creds: creds, doctors: doctors}
}

// doctorName degrades to a placeholder when the doctor row is missing or the
// lookup fails, so a dangling credential still reads.
func (s *CredentialService) doctorName(ctx context.Context, doctorID int) string {
	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		return unknownDoctorName
	}
	return doctor.Name
}

func (s *CredentialService) view(ctx context.Context, cred *models.Credential) CredentialView {
	return CredentialView{
		ID:          cred.ID,
		DoctorID:    cred.DoctorID,
		DoctorName:  s.doctorName(ctx, cred.DoctorID),
		Username:    cred.Username,
		HasPassword: true,
		CreatedAt:   cred.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   cred.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// GetAll lists every credential, redacted and ordered by id.
func (s *CredentialService) GetAll(ctx context.Context) ([]CredentialView, error) {
	creds, err := s.creds.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]CredentialView, 0, len(creds))
	for i := range creds {
		views = append(views, s.view(ctx, &creds[i]))
	}
	return views, nil
}

func (s *CredentialService) GetByID(ctx context.Context, id int) (*CredentialView, error) {
	cred, err := s.creds.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrNotFound
	}
	v := s.view(ctx, cred)
	return &v, nil
}

func (s *CredentialService) GetByDoctor(ctx context.Context, doctorID int) (*CredentialView, error) {
	cred, err := s.creds.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrNotFound
	}
	v := s.view(ctx, cred)
	return &v, nil
}

// Create registers login credentials for a doctor. The referenced doctor
// must exist, the doctor must not already have credentials, and the
// lowercased username must be globally unique. Hashing runs before the
// allocation lock; the uniqueness checks run inside it.
func (s *CredentialService) Create(ctx context.Context, doctorID int, username, rawPassword string) (*CredentialView, error) {
	if doctorID == 0 || username == "" || rawPassword == "" {
		return nil, ErrInvalidInput
	}

	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	normalized := strings.ToLower(username)

	var cred models.Credential
	_, err = s.alloc.Next(
		func() (int, error) { return s.creds.MaxID(ctx) },
		func(id int) error {
			existing, err := s.creds.FindByDoctorID(ctx, doctorID)
			if err != nil {
				return err
			}
			if existing != nil {
				return ErrDoctorHasCredentials
			}
			taken, err := s.creds.FindByUsername(ctx, normalized)
			if err != nil {
				return err
			}
			if taken != nil {
				return ErrUsernameTaken
			}
			cred = models.Credential{
				ID:       id,
				DoctorID: doctorID,
				Username: normalized,
				Password: string(hashed),
			}
			return s.creds.Create(ctx, &cred)
		},
	)
	if err != nil {
		return nil, err
	}

	return &CredentialView{
		ID:          cred.ID,
		DoctorID:    cred.DoctorID,
		DoctorName:  doctor.Name,
		Username:    cred.Username,
		HasPassword: true,
	}, nil
}

// Update changes the username and/or password of an existing credential.
// Omitted fields stay untouched. A changed username re-checks global
// uniqueness against every other record.
func (s *CredentialService) Update(ctx context.Context, id int, username, rawPassword string) (*CredentialView, error) {
	cred, err := s.creds.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrNotFound
	}

	if username != "" && username != cred.Username {
		normalized := strings.ToLower(username)
		taken, err := s.creds.FindByUsernameExcluding(ctx, normalized, id)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrUsernameTaken
		}
		cred.Username = normalized
	}

	if rawPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		cred.Password = string(hashed)
	}

	if err := s.creds.Save(ctx, cred); err != nil {
		return nil, err
	}

	v := s.view(ctx, cred)
	return &v, nil
}

// Delete removes a credential. The referenced doctor record stays.
func (s *CredentialService) Delete(ctx context.Context, id int) error {
	cred, err := s.creds.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cred == nil {
		return ErrNotFound
	}
	return s.creds.Delete(ctx, id)
}

// DeleteByDoctor is the cascade hook used when a doctor record is removed,
// so no orphaned credential rows are left behind. Absence is not an error.
func (s *CredentialService) DeleteByDoctor(ctx context.Context, doctorID int) error {
	cred, err := s.creds.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return err
	}
	if cred == nil {
		return nil
	}
	return s.creds.Delete(ctx, cred.ID)
}

// Verify checks a presented username/password pair. An unknown username and
// a wrong password return the identical ErrInvalidCredentials, never a hint
// of which one it was.
func (s *CredentialService) Verify(ctx context.Context, username, rawPassword string) (*Identity, error) {
	if username == "" || rawPassword == "" {
		return nil, ErrInvalidInput
	}

	cred, err := s.creds.FindByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(rawPassword)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		DoctorID:   cred.DoctorID,
		DoctorName: s.doctorName(ctx, cred.DoctorID),
		Username:   cred.Username,
	}, nil
}

// seedUsername derives "dr." plus the lowercased second word of the
// doctor's name, so "Dr. Sarah Haider" becomes dr.sarah. Single-word names
// fall back to that word.
func seedUsername(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "dr."
	}
	first := words[0]
	if len(words) > 1 {
		first = words[1]
	}
	return "dr." + strings.ToLower(first)
}

// Seed wipes all credentials and provisions one per doctor, ordered by id,
// each sharing DefaultSeedPassword. Every record goes through Create so the
// usual hashing and id allocation apply. Destructive; the route is gated to
// administrators.
func (s *CredentialService) Seed(ctx context.Context) ([]SeededCredential, error) {
	doctors, err := s.doctors.FindAllSorted(ctx)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrNoDoctors
	}

	if err := s.creds.DeleteAll(ctx); err != nil {
		return nil, err
	}

	seeded := make([]SeededCredential, 0, len(doctors))
	for i := range doctors {
		doctor := &doctors[i]
		view, err := s.Create(ctx, doctor.ID, seedUsername(doctor.Name), DefaultSeedPassword)
		if err != nil {
			return nil, err
		}
		seeded = append(seeded, SeededCredential{
			ID:              view.ID,
			DoctorID:        view.DoctorID,
			DoctorName:      doctor.Name,
			Username:        view.Username,
			DefaultPassword: DefaultSeedPassword,
		})
	}
	return seeded, nil
}
