package taskrecord

import (
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/core/refcheck"
)

func TestTaskRecord(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "TaskRecord Module Suite")
}

type mockRepository struct {
	records map[int64]*model.TaskRecord
	nextID  int64
	updates map[string]interface{}
}

func newMockRepository() *mockRepository {
	return &mockRepository{records: map[int64]*model.TaskRecord{}, nextID: 1}
}

func (m *mockRepository) GetAll() ([]*model.TaskRecord, error) {
	recs := make([]*model.TaskRecord, 0, len(m.records))
	for _, rec := range m.records {
		recs = append(recs, rec)
	}
	return recs, nil
}

func (m *mockRepository) GetByID(id int64) (*model.TaskRecord, error) {
	return m.records[id], nil
}

func (m *mockRepository) GetByEmployee(employeeID int64) ([]*model.TaskRecord, error) {
	var recs []*model.TaskRecord
	for _, rec := range m.records {
		if rec.EmployeeID == employeeID {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

func (m *mockRepository) Create(rec *model.TaskRecord) error {
	rec.TaskRecordID = m.nextID
	m.nextID++
	m.records[rec.TaskRecordID] = rec
	return nil
}

func (m *mockRepository) Update(id int64, fields map[string]interface{}) error {
	m.updates = fields
	rec := m.records[id]
	if v, ok := fields["Duration"]; ok {
		rec.Duration = v.(float64)
	}
	if v, ok := fields["TaskDate"]; ok {
		rec.TaskDate = v.(model.Date)
	}
	if v, ok := fields["EmployeeID"]; ok {
		rec.EmployeeID = v.(int64)
	}
	return nil
}

func (m *mockRepository) Delete(id int64) error {
	delete(m.records, id)
	return nil
}

// mockRefChecker knows a fixed set of rows per entity.
type mockRefChecker struct {
	known map[refcheck.Entity]map[int64]bool
}

func (m *mockRefChecker) Exists(entity refcheck.Entity, id int64) (bool, error) {
	return m.known[entity][id], nil
}

func (m *mockRefChecker) Require(entity refcheck.Entity, field string, id int64) error {
	ok, _ := m.Exists(entity, id)
	if !ok {
		return internal.NewInvalidReferenceError(field)
	}
	return nil
}

var _ = ginkgo.Describe("TaskRecordService", func() {
	var (
		service *Service
		repo    *mockRepository
		refs    *mockRefChecker
	)

	taskDate := model.NewDate(2025, time.February, 15)

	ginkgo.BeforeEach(func() {
		repo = newMockRepository()
		refs = &mockRefChecker{known: map[refcheck.Entity]map[int64]bool{
			refcheck.Employee: {10122353: true},
			refcheck.TaskType: {1: true},
		}}
		service = NewService(repo, refs, slog.Default())
	})

	validCreate := func() CreateDTO {
		return CreateDTO{
			EmployeeID: 10122353,
			TaskTypeID: 1,
			TaskDate:   taskDate,
			Duration:   7.5,
		}
	}

	ginkgo.Describe("Create", func() {
		ginkgo.It("should store a valid record", func() {
			rec, err := service.Create(validCreate())

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rec.TaskRecordID).To(gomega.Equal(int64(1)))
			gomega.Expect(rec.Duration).To(gomega.Equal(7.5))
		})

		ginkgo.It("should reject an unknown employee", func() {
			dto := validCreate()
			dto.EmployeeID = 999

			_, err := service.Create(dto)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.Equal("Invalid EmployeeID"))
		})

		ginkgo.It("should reject an unknown task type", func() {
			dto := validCreate()
			dto.TaskTypeID = 999

			_, err := service.Create(dto)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.Equal("Invalid TaskTypeID"))
		})

		ginkgo.It("should reject a non-positive duration", func() {
			dto := validCreate()
			dto.Duration = 0

			_, err := service.Create(dto)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("Duration"))
		})
	})

	ginkgo.Describe("Update", func() {
		var created *model.TaskRecord

		ginkgo.BeforeEach(func() {
			var err error
			created, err = service.Create(validCreate())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should overwrite only the provided fields", func() {
			newDuration := 4.0

			rec, err := service.Update(created.TaskRecordID, UpdateDTO{Duration: &newDuration})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rec.Duration).To(gomega.Equal(4.0))
			gomega.Expect(rec.EmployeeID).To(gomega.Equal(int64(10122353)))
			gomega.Expect(repo.updates).To(gomega.HaveLen(1))
			gomega.Expect(repo.updates).To(gomega.HaveKey("Duration"))
		})

		ginkgo.It("should skip the write entirely for an empty update", func() {
			rec, err := service.Update(created.TaskRecordID, UpdateDTO{})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rec.Duration).To(gomega.Equal(7.5))
			gomega.Expect(repo.updates).To(gomega.BeNil())
		})

		ginkgo.It("should check references when the employee changes", func() {
			badEmployee := int64(999)

			_, err := service.Update(created.TaskRecordID, UpdateDTO{EmployeeID: &badEmployee})

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.Equal("Invalid EmployeeID"))
		})

		ginkgo.It("should return not found for a missing record", func() {
			newDuration := 4.0

			_, err := service.Update(999, UpdateDTO{Duration: &newDuration})

			gomega.Expect(err).To(gomega.HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(404))
		})
	})

	ginkgo.Describe("GetByEmployee", func() {
		ginkgo.It("should return only that employee's records", func() {
			_, err := service.Create(validCreate())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			recs, err := service.GetByEmployee(10122353)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(recs).To(gomega.HaveLen(1))
			gomega.Expect(recs[0].EmployeeID).To(gomega.Equal(int64(10122353)))
		})

		ginkgo.It("should return an empty list for an unknown employee", func() {
			recs, err := service.GetByEmployee(42)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(recs).To(gomega.BeEmpty())
		})
	})
})
