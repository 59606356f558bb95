package chi

import (
	dombatch "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/batch"
	domclass "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/class"
	domprof "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/professor"
	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
)

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type hodJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type loginResponse struct {
	Token string  `json:"token"`
	HOD   hodJSON `json:"hod"`
}

type studentJSON struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Enrollment string   `json:"enrollmentNumber"`
	Semester   int      `json:"semester"`
	Division   string   `json:"division"`
	ClassIDs   []string `json:"classIds"`
}

func studentToJSON(s domstudent.Student) studentJSON {
	return studentJSON{
		ID:         s.ID(),
		Name:       s.Name(),
		Enrollment: s.Enrollment(),
		Semester:   s.Semester(),
		Division:   s.Division(),
		ClassIDs:   s.ClassIDs(),
	}
}

type professorJSON struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	ClassIDs []string `json:"classIds"`
}

func professorToJSON(p domprof.Professor) professorJSON {
	return professorJSON{ID: p.ID(), Name: p.Name(), Email: p.Email(), ClassIDs: p.ClassIDs()}
}

type classJSON struct {
	ID           string   `json:"id"`
	Name         string   `json:"className"`
	Semester     int      `json:"semester"`
	Division     string   `json:"division"`
	ProfessorIDs []string `json:"professorIds"`
	StudentIDs   []string `json:"studentIds"`
}

func classToJSON(c domclass.Class) classJSON {
	return classJSON{
		ID:           c.ID(),
		Name:         c.Name(),
		Semester:     c.Semester(),
		Division:     c.Division(),
		ProfessorIDs: c.ProfessorIDs(),
		StudentIDs:   c.StudentIDs(),
	}
}

type batchFailureJSON struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type batchReportJSON struct {
	Success []string           `json:"success"`
	Failed  []batchFailureJSON `json:"failed"`
}

func reportToJSON(report dombatch.Report) batchReportJSON {
	out := batchReportJSON{
		Success: report.Succeeded(),
		Failed:  make([]batchFailureJSON, 0, len(report.Failed())),
	}
	if out.Success == nil {
		out.Success = []string{}
	}
	for _, f := range report.Failed() {
		msg := ""
		if f.Err() != nil {
			msg = f.Err().Error()
		}
		out.Failed = append(out.Failed, batchFailureJSON{ID: f.ID(), Error: msg})
	}
	return out
}
