package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ovi-dev/geslab/internal/application/usecase"
	"github.com/ovi-dev/geslab/internal/auth"
	"github.com/ovi-dev/geslab/internal/filter"
	"github.com/ovi-dev/geslab/internal/infrastructure/rest"
	"github.com/ovi-dev/geslab/internal/store"
	"github.com/ovi-dev/geslab/pkg/config"
	"github.com/ovi-dev/geslab/pkg/logger"
)

// geslab es el cliente de consola del laboratorio: inicia sesión contra la
// API, carga el panel pedido (clientes o muestras) y pagina la tabla filtrada
// por consola con la misma semántica de scroll infinito de la aplicación.
func main() {
	var (
		panel       = flag.String("panel", "clientes", "panel a mostrar: clientes | muestras")
		usuario     = flag.String("usuario", "admin", "usuario de la API")
		password    = flag.String("password", "admin", "contraseña de la API")
		fNombre     = flag.String("nombre", "", "filtro por nombre (clientes)")
		fCIF        = flag.String("cif", "", "filtro por CIF (clientes)")
		fTelefono   = flag.String("telefono", "", "filtro por teléfono (clientes)")
		fProducto   = flag.String("producto", "", "filtro por producto (muestras)")
		fReferencia = flag.String("referencia", "", "filtro por referencia de cliente (muestras)")
		fUrgente    = flag.Bool("urgente", false, "solo muestras urgentes")
		todas       = flag.Bool("todas", false, "volcar todas las páginas sin pausar")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	sesion := auth.NewSesion(cfg.API.TokenFile, log)
	sesion.OnInvalidada(func() {
		fmt.Fprintln(os.Stderr, "la sesión ha caducado, vuelva a iniciar sesión")
	})

	api := rest.NewAPIClient(cfg.API.BaseURL, cfg.API.Timeout(), sesion, log)
	authGW := rest.NewAuthGateway(api)
	authUC := usecase.NewAuthUseCase(authGW, sesion, log)

	ctx := context.Background()

	if !authUC.Autenticado() {
		if err := authUC.Login(ctx, *usuario, *password); err != nil {
			fmt.Fprintln(os.Stderr, "no se pudo iniciar sesión:", err)
			os.Exit(1)
		}
	}
	if u, err := authUC.Usuario(ctx); err == nil {
		fmt.Printf("Sesión de %s\n\n", u.Nombre)
	}

	switch *panel {
	case "clientes":
		filtro := filter.ClienteFiltro{Nombre: *fNombre, CIF: *fCIF, Telefono: *fTelefono}
		if err := panelClientes(ctx, cfg, api, log, filtro, *todas); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "muestras":
		filtro := filter.MuestraFiltro{Producto: *fProducto, Referencia: *fReferencia, Urgente: *fUrgente}
		if err := panelMuestras(ctx, cfg, api, log, filtro, *todas); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "panel desconocido: %s\n", *panel)
		os.Exit(1)
	}
}

func panelClientes(ctx context.Context, cfg *config.Config, api *rest.APIClient, log *logger.Logger, filtro filter.ClienteFiltro, todas bool) error {
	gw := rest.NewClienteGateway(api, cfg.API.CacheTTL())
	st := store.NewClienteStore()
	loader := usecase.NewClienteLoader(gw, st, log)
	defer loader.Deactivate()

	if err := loader.Activate(ctx); err != nil {
		return fmt.Errorf("%s", st.Error())
	}

	tabla := usecase.NewTablaClientes(st, cfg.Tabla.PageSize)
	defer tabla.Cerrar()
	tabla.SetFiltro(filtro)

	for {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tCIF\tTELÉFONO\tTIPO")
		for _, c := range tabla.Visibles() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Nombre, c.CIF, c.Telefono, c.Tipo)
		}
		w.Flush()
		fmt.Printf("-- %d de %d --\n", len(tabla.Visibles()), len(st.Filtrados()))

		if !tabla.HayMas() {
			return nil
		}
		if !todas && !continuar() {
			return nil
		}
		tabla.SentinelVisible()
	}
}

func panelMuestras(ctx context.Context, cfg *config.Config, api *rest.APIClient, log *logger.Logger, filtro filter.MuestraFiltro, todas bool) error {
	gw := rest.NewMuestraGateway(api, cfg.API.CacheTTL())
	st := store.NewMuestraStore()
	loader := usecase.NewMuestraLoader(gw, st, log)
	defer loader.Deactivate()

	if err := loader.Activate(ctx); err != nil {
		return fmt.Errorf("%s", st.Error())
	}

	tabla := usecase.NewTablaMuestras(st, cfg.Tabla.PageSize)
	defer tabla.Cerrar()
	tabla.SetFiltro(filtro)

	for {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tREFERENCIA\tPRODUCTO\tPRECIO\tURGENTE")
		for _, m := range tabla.Visibles() {
			urgente := ""
			if m.Urgente == 1 {
				urgente = "sí"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.ReferenciaCliente, m.Producto, m.Precio.StringFixed(2), urgente)
		}
		w.Flush()
		fmt.Printf("-- %d de %d --\n", len(tabla.Visibles()), len(st.Filtradas()))

		if !tabla.HayMas() {
			return nil
		}
		if !todas && !continuar() {
			return nil
		}
		tabla.SentinelVisible()
	}
}

// continuar pausa hasta que el usuario pida la siguiente página.
func continuar() bool {
	fmt.Print("[enter] siguiente página, q para salir: ")
	lector := bufio.NewReader(os.Stdin)
	linea, err := lector.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(linea) != "q"
}
