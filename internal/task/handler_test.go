package task_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/task"
	"github.com/plantworks/facilityops/internal/user"
)

type stubTaskService struct {
	task.ServiceAPI
	visibleFor []string
}

func (s *stubTaskService) GetVisible(viewer *user.User) ([]task.Task, error) {
	s.visibleFor = append(s.visibleFor, viewer.ID)
	return []task.Task{}, nil
}

type stubUserLookup struct {
	users map[string]*user.User
}

func (s *stubUserLookup) GetByID(id string) (*user.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, internal.ErrUserNotFound
}

var _ = Describe("Handler GetTasks", func() {
	var (
		service *stubTaskService
		handler *task.Handler
	)

	BeforeEach(func() {
		service = &stubTaskService{}
		lookup := &stubUserLookup{users: map[string]*user.User{
			"u3": {ID: "u3", Role: user.RoleWorker},
		}}
		handler = task.NewHandler(service, lookup)
	})

	It("should resolve the viewer from the identity stamped on the context", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		req = req.WithContext(internal.ContextWithUserID(req.Context(), "u3"))
		recorder := httptest.NewRecorder()

		handler.GetTasks(recorder, req)

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(service.visibleFor).To(Equal([]string{"u3"}))
	})

	It("should refuse a request with no identity", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		recorder := httptest.NewRecorder()

		handler.GetTasks(recorder, req)

		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		Expect(service.visibleFor).To(BeEmpty())
	})
})
