package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestModel(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Model Suite")
}

var _ = ginkgo.Describe("Date", func() {
	type payload struct {
		TaskDate Date `json:"TaskDate"`
	}

	ginkgo.It("should accept the plain date form", func() {
		var p payload
		err := json.Unmarshal([]byte(`{"TaskDate":"2025-02-15"}`), &p)

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(p.TaskDate.Year()).To(gomega.Equal(2025))
		gomega.Expect(p.TaskDate.Month()).To(gomega.Equal(time.February))
		gomega.Expect(p.TaskDate.Day()).To(gomega.Equal(15))
	})

	ginkgo.It("should accept a full RFC 3339 timestamp", func() {
		var p payload
		err := json.Unmarshal([]byte(`{"TaskDate":"2025-02-15T00:00:00Z"}`), &p)

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(p.TaskDate.Day()).To(gomega.Equal(15))
	})

	ginkgo.It("should reject garbage", func() {
		var p payload
		err := json.Unmarshal([]byte(`{"TaskDate":"half past two"}`), &p)

		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should marshal back to the plain date form", func() {
		raw, err := json.Marshal(payload{TaskDate: NewDate(2025, time.February, 15)})

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(string(raw)).To(gomega.Equal(`{"TaskDate":"2025-02-15"}`))
	})

	ginkgo.It("should treat null as the zero date", func() {
		var p payload
		err := json.Unmarshal([]byte(`{"TaskDate":null}`), &p)

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(p.TaskDate.IsZero()).To(gomega.BeTrue())
	})
})

var _ = ginkgo.Describe("ValidMonth", func() {
	ginkgo.It("should accept YYYY-MM keys", func() {
		gomega.Expect(ValidMonth("2025-02")).To(gomega.BeTrue())
	})

	ginkgo.It("should reject other shapes", func() {
		gomega.Expect(ValidMonth("2025-13")).To(gomega.BeFalse())
		gomega.Expect(ValidMonth("2025/02")).To(gomega.BeFalse())
		gomega.Expect(ValidMonth("Feb 2025")).To(gomega.BeFalse())
		gomega.Expect(ValidMonth("")).To(gomega.BeFalse())
	})
})
