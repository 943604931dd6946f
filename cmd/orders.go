package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"bazar.GO/config"
	orderRepo "bazar.GO/model/repository/order"
)

var ordersLimit int

var ordersListCmd = &cobra.Command{
	Use:   "orders:list",
	Short: "Show recent order submissions",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		repo := orderRepo.NewOrderRepository(db)
		if err := repo.Migrate(); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		orders, err := repo.List(ordersLimit)
		if err != nil {
			fmt.Printf("Query failed: %v\n", err)
			os.Exit(1)
		}
		if len(orders) == 0 {
			fmt.Println("No orders recorded.")
			return
		}
		for _, o := range orders {
			email := "N/A"
			if o.Email != nil {
				email = *o.Email
			}
			fmt.Printf("#%d  %s  %s  %s  ৳%s  %s\n",
				o.OrderID, o.CreatedAt.Format("2006-01-02 15:04"), o.Name, o.Phone,
				strconv.FormatFloat(o.Total, 'f', -1, 64), email)
		}
	},
}

func init() {
	ordersListCmd.Flags().IntVarP(&ordersLimit, "limit", "n", 50, "Max orders to show")
	Register(ordersListCmd)
}
