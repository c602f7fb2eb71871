// 'oracenter top' - top-like stats viewer.

package top

import (
	"context"

	"github.com/jroimartin/gocui"
	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
)

// RunMain is the main entry point for 'oracenter top' command
func RunMain(dbConfig oracle.Config) error {
	// Connect to Oracle.
	db, err := oracle.Connect(dbConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	// Create application instance.
	app := newApp(db, newConfig())

	// Setup application.
	err = app.setup()
	if err != nil {
		return err
	}

	// Run application workers and UI.
	return mainLoop(context.TODO(), app)
}

// app defines application and all necessary dependencies.
type app struct {
	oracleProps stat.OracleProperties
	config      *config
	ui          *gocui.Gui
	uiError     error
	db          *oracle.DB
	uiExit      chan int
}

// newApp creates new application instance.
func newApp(db *oracle.DB, config *config) *app {
	return &app{
		config: config,
		db:     db,
	}
}

// setup performs initial application setup based on properties of the instance application connected to.
func (app *app) setup() error {
	// Fetch Oracle properties.
	props, err := stat.GetOracleProperties(app.db)
	if err != nil {
		return err
	}

	// Select proper queries depending on Oracle version and cluster mode.
	app.config.queryOptions = query.NewOptions(props.VersionNum, props.RAC, props.CDB, 64)

	// Compile query texts from templates using previously adjusted query options.
	err = app.config.views.Configure(app.config.queryOptions)
	if err != nil {
		return err
	}

	// Set default view.
	app.config.view = app.config.views["sessions"]

	app.oracleProps = props
	app.uiExit = make(chan int)

	return nil
}

// quit performs graceful application quit.
func (app *app) quit() func(g *gocui.Gui, _ *gocui.View) error {
	return func(g *gocui.Gui, _ *gocui.View) error {
		close(app.uiExit)
		g.Close()
		app.db.Close()

		return gocui.ErrQuit
	}
}
