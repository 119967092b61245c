package app

type RouteType int

const (
	RouteType_Browser RouteType = iota
	RouteType_Tutor
	RouteType_Wizard
	RouteType_Help
)

type Route struct {
	Type  RouteType
	Tutor *TutorRoute
}

type TutorRoute struct {
	LessonKey string
}

func (state *State) GoBrowser() {
	state.Route = Route{Type: RouteType_Browser}
}

func (state *State) GoTutor(lessonKey string) {
	state.Route = Route{Type: RouteType_Tutor, Tutor: &TutorRoute{LessonKey: lessonKey}}
}

func (state *State) GoHelp() {
	state.Route = Route{Type: RouteType_Help}
}
