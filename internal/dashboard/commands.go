package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/dashboard/client"
)

// searchDebounce is how long typing must pause before a search fires.
const searchDebounce = 300 * time.Millisecond

// bannerLifetime is how long a status banner stays visible.
const bannerLifetime = 5 * time.Second

// requestTimeout bounds every API call issued by the dashboard.
const requestTimeout = 15 * time.Second

// API is the surface of the REST client the controller depends on. It is an
// interface so tests can substitute a recording fake.
type API interface {
	ListStudents(ctx context.Context, p client.ListParams) (*dto.StudentListResponse, error)
	SearchStudents(ctx context.Context, p client.ListParams) (*dto.StudentListResponse, error)
	AddStudent(ctx context.Context, student *models.Student) (string, error)
	UpdateStudent(ctx context.Context, studentID string, student *models.Student) (string, error)
	DeleteStudent(ctx context.Context, studentID string) (string, error)
}

// studentsMsg carries a fetched page. seq orders responses so a slow reply
// can never overwrite a newer one.
type studentsMsg struct {
	seq        uint64
	students   []models.Student
	pagination *dto.PaginationInfo
}

// fetchErrMsg reports a failed page fetch.
type fetchErrMsg struct {
	seq uint64
	err error
}

// mutationMsg reports the outcome of an add, update or delete.
type mutationMsg struct {
	message string
	err     error
}

// debounceMsg fires when the search pause elapses. gen identifies which
// keystroke scheduled it; stale generations are ignored.
type debounceMsg struct {
	gen int
}

// bannerExpireMsg clears the banner identified by id.
type bannerExpireMsg struct {
	id int
}

func (m *Model) fetchCmd(seq uint64) tea.Cmd {
	params := client.ListParams{
		Page:          m.list.Page,
		PerPage:       m.list.PageSize,
		SortColumn:    m.list.SortColumn,
		SortDirection: m.list.SortDirection,
		Query:         m.list.SearchTerm,
	}
	searching := m.list.Searching()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var (
			resp *dto.StudentListResponse
			err  error
		)
		if searching {
			resp, err = m.api.SearchStudents(ctx, params)
		} else {
			resp, err = m.api.ListStudents(ctx, params)
		}
		if err != nil {
			return fetchErrMsg{seq: seq, err: err}
		}
		return studentsMsg{seq: seq, students: resp.Students, pagination: resp.Pagination}
	}
}

func (m *Model) addCmd(student *models.Student) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		msg, err := m.api.AddStudent(ctx, student)
		return mutationMsg{message: msg, err: err}
	}
}

func (m *Model) updateCmd(studentID string, student *models.Student) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		msg, err := m.api.UpdateStudent(ctx, studentID, student)
		return mutationMsg{message: msg, err: err}
	}
}

func (m *Model) deleteCmd(studentID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		msg, err := m.api.DeleteStudent(ctx, studentID)
		return mutationMsg{message: msg, err: err}
	}
}

func debounceCmd(gen int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

func bannerExpireCmd(id int) tea.Cmd {
	return tea.Tick(bannerLifetime, func(time.Time) tea.Msg {
		return bannerExpireMsg{id: id}
	})
}
