package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harmonylane/studio-admin-api/internal/store"
	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"
	"github.com/harmonylane/studio-admin-api/pkg/export"
)

// ExportFormat selects the rendered document type.
type ExportFormat string

// Supported export formats.
const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportResult bundles rendered bytes with their download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders roster downloads for the admin panel.
type ExportService struct {
	students  *store.StudentStore
	batches   *store.BatchStore
	directory *store.CourseDirectory
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(students *store.StudentStore, batches *store.BatchStore, directory *store.CourseDirectory, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students:  students,
		batches:   batches,
		directory: directory,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// StudentRoster renders the full student roster with resolved course titles.
func (s *ExportService) StudentRoster(ctx context.Context, format ExportFormat) (ExportResult, error) {
	students := s.students.List()
	data := export.Dataset{
		Headers: []string{"ID", "Name", "Email", "Status", "Courses", "Join Date"},
		Rows:    make([]map[string]string, 0, len(students)),
	}
	for _, student := range students {
		data.Rows = append(data.Rows, map[string]string{
			"ID":        strconv.Itoa(student.ID),
			"Name":      student.Name,
			"Email":     student.Email,
			"Status":    string(student.Status),
			"Courses":   s.courseTitles(student.Courses),
			"Join Date": student.JoinDate,
		})
	}
	return s.render(format, "students", "Student Roster", data)
}

// BatchRoster renders a single batch's member list.
func (s *ExportService) BatchRoster(ctx context.Context, batchID int, format ExportFormat) (ExportResult, error) {
	batch, err := s.batches.Get(batchID)
	if err != nil {
		return ExportResult{}, translateStoreError(err, "batch not found")
	}

	data := export.Dataset{
		Headers: []string{"ID", "Name", "Email", "Status"},
		Rows:    make([]map[string]string, 0, len(batch.StudentIDs)),
	}
	for _, studentID := range batch.StudentIDs {
		student, err := s.students.Get(studentID)
		if err != nil {
			continue
		}
		data.Rows = append(data.Rows, map[string]string{
			"ID":     strconv.Itoa(student.ID),
			"Name":   student.Name,
			"Email":  student.Email,
			"Status": string(student.Status),
		})
	}

	title := fmt.Sprintf("%s (%s)", batch.Name, s.directory.Lookup(batch.CourseID).Title)
	return s.render(format, "batch", title, data)
}

func (s *ExportService) render(format ExportFormat, prefix, title string, data export.Dataset) (ExportResult, error) {
	stamp := time.Now().UTC().Format("20060102")
	token := uuid.NewString()[:8]

	switch format {
	case FormatCSV:
		raw, err := s.csv.Render(data)
		if err != nil {
			return ExportResult{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv")
		}
		return ExportResult{
			Filename:    fmt.Sprintf("%s-%s-%s.csv", prefix, stamp, token),
			ContentType: "text/csv",
			Data:        raw,
		}, nil
	case FormatPDF:
		raw, err := s.pdf.Render(data, title)
		if err != nil {
			return ExportResult{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf")
		}
		return ExportResult{
			Filename:    fmt.Sprintf("%s-%s-%s.pdf", prefix, stamp, token),
			ContentType: "application/pdf",
			Data:        raw,
		}, nil
	default:
		return ExportResult{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// courseTitles resolves course ids into a comma separated title list. Unknown
// ids surface the catalog sentinel rather than breaking the export.
func (s *ExportService) courseTitles(courseIDs []int) string {
	titles := make([]string, 0, len(courseIDs))
	for _, id := range courseIDs {
		titles = append(titles, s.directory.Lookup(id).Title)
	}
	return strings.Join(titles, ", ")
}
