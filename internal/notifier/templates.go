package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
)

// Turkish email subjects for the templated notifications.
const (
	SubjectPriceAlert          = "🎯 Fiyat Uyarısı - Hedef Fiyat Düştü!"
	SubjectBookingConfirmation = "✅ Rezervasyon Onayı"
	SubjectDealAlert           = "🔥 Süper Fırsat - Sınırlı Süreli İndirim!"
	SubjectWatchConfirmation   = "👁️ Fiyat Takibi Oluşturuldu"
)

// WatchConfirmationMessage builds the price-watch confirmation email body.
func WatchConfirmationMessage(watch domain.SavedSearch) string {
	var b strings.Builder
	b.WriteString("Merhaba,\n\n")
	b.WriteString("Fiyat takibiniz başarıyla oluşturuldu.\n\n")
	b.WriteString("Takip Detayları:\n")
	fmt.Fprintf(&b, "• Güzergah: %s → %s\n", watch.Origin, watch.Destination)
	fmt.Fprintf(&b, "• Tarih: %s\n", watch.DepartureDate)
	fmt.Fprintf(&b, "• Hedef Fiyat: %d TL\n\n", watch.MaxPrice)
	b.WriteString("Fiyat hedef fiyatınızın altına düştüğünde size haber vereceğiz.\n")
	b.WriteString("\nEn Uygun Uçak Bileti Ekibi\n")
	return b.String()
}

// PriceAlertMessage builds the price-drop email body.
func PriceAlertMessage(offer domain.FlightOffer, query domain.SearchQuery, targetPrice int) string {
	var b strings.Builder
	b.WriteString("Merhaba,\n\n")
	b.WriteString("Takip ettiğiniz uçuş için fiyat düşüşü tespit edildi!\n\n")
	b.WriteString("Uçuş Detayları:\n")
	fmt.Fprintf(&b, "• Güzergah: %s → %s\n", query.Departure, query.Destination)
	fmt.Fprintf(&b, "• Tarih: %s\n", query.Date)
	fmt.Fprintf(&b, "• Havayolu: %s\n\n", offer.Airline.Name)
	b.WriteString("Fiyat Bilgileri:\n")
	fmt.Fprintf(&b, "• Hedef Fiyat: %d TL\n", targetPrice)
	fmt.Fprintf(&b, "• Mevcut Fiyat: %d TL\n", offer.Price)
	fmt.Fprintf(&b, "• Tasarruf: %d TL\n\n", targetPrice-offer.Price)
	b.WriteString("Hemen rezervasyon yapmak için linke tıklayın:\n")
	b.WriteString(offer.BookingURL)
	b.WriteString("\n\nEn Uygun Uçak Bileti Ekibi\n")
	return b.String()
}

// BookingDetails carries the fields of a booking confirmation email.
type BookingDetails struct {
	ConfirmationCode string
	Departure        string
	Destination      string
	Date             string
	Time             string
	PassengerName    string
	TotalPrice       int
}

// BookingConfirmationMessage builds the booking confirmation email body.
func BookingConfirmationMessage(d BookingDetails) string {
	var b strings.Builder
	b.WriteString("Rezervasyonunuz başarıyla alındı!\n\n")
	b.WriteString("Rezervasyon Detayları:\n")
	fmt.Fprintf(&b, "• Rezervasyon Kodu: %s\n", d.ConfirmationCode)
	fmt.Fprintf(&b, "• Güzergah: %s → %s\n", d.Departure, d.Destination)
	fmt.Fprintf(&b, "• Tarih: %s\n", d.Date)
	fmt.Fprintf(&b, "• Saat: %s\n", d.Time)
	fmt.Fprintf(&b, "• Yolcu: %s\n", d.PassengerName)
	fmt.Fprintf(&b, "• Toplam Tutar: %d TL\n\n", d.TotalPrice)
	b.WriteString("Check-in işlemi için havayolu web sitesini ziyaret edin.\n\n")
	b.WriteString("İyi yolculuklar!\nEn Uygun Uçak Bileti Ekibi\n")
	return b.String()
}

// FlightReminderMessage builds the departure reminder email body.
func FlightReminderMessage(offer domain.FlightOffer, hoursBefore int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Uçuşunuza %d saat kaldı!\n\n", hoursBefore)
	b.WriteString("Uçuş Detayları:\n")
	fmt.Fprintf(&b, "• Güzergah: %s → %s\n", offer.Origin, offer.Destination)
	fmt.Fprintf(&b, "• Tarih: %s\n", offer.DepartureTime.Format(domain.DateLayout))
	fmt.Fprintf(&b, "• Kalkış Saati: %s\n", offer.DepartureTime.Format("15:04"))
	fmt.Fprintf(&b, "• Havayolu: %s\n", offer.Airline.Name)
	fmt.Fprintf(&b, "• Uçuş No: %s\n\n", offer.FlightNumber)
	b.WriteString("Hatırlatmalar:\n")
	b.WriteString("• Havalimanına en az 2 saat önce gelin\n")
	b.WriteString("• Check-in işlemini unutmayın\n")
	b.WriteString("• Kimlik belgelerinizi yanınıza alın\n")
	b.WriteString("• Bagaj limitlerini kontrol edin\n\n")
	b.WriteString("İyi yolculuklar!\nEn Uygun Uçak Bileti Ekibi\n")
	return b.String()
}

// DealDetails carries the fields of a deal alert email.
type DealDetails struct {
	Departure          string
	Destination        string
	NormalPrice        int
	DiscountedPrice    int
	DiscountPercentage int
	ValidUntil         string
}

// DealAlertMessage builds the limited-time deal email body.
func DealAlertMessage(d DealDetails) string {
	var b strings.Builder
	b.WriteString("Kaçırılmayacak fırsat!\n\n")
	b.WriteString("Fırsat Detayları:\n")
	fmt.Fprintf(&b, "• Güzergah: %s → %s\n", d.Departure, d.Destination)
	fmt.Fprintf(&b, "• Normal Fiyat: %d TL\n", d.NormalPrice)
	fmt.Fprintf(&b, "• İndirimli Fiyat: %d TL\n", d.DiscountedPrice)
	fmt.Fprintf(&b, "• İndirim Oranı: %%%d\n", d.DiscountPercentage)
	fmt.Fprintf(&b, "• Geçerlilik: %s\n\n", d.ValidUntil)
	b.WriteString("Bu fırsatı kaçırmayın! Hemen rezervasyon yapın.\n\n")
	b.WriteString("En Uygun Uçak Bileti Ekibi\n")
	return b.String()
}

// SendPriceAlert emails a price-drop alert for an offer found below the
// user's target price.
func (d *Dispatcher) SendPriceAlert(ctx context.Context, userEmail string, offer domain.FlightOffer, query domain.SearchQuery, targetPrice int) bool {
	message := PriceAlertMessage(offer, query, targetPrice)
	return d.Send(ctx, userEmail, message, ChannelEmail, SubjectPriceAlert)
}

// SendWatchConfirmation emails a confirmation for a newly created price watch.
func (d *Dispatcher) SendWatchConfirmation(ctx context.Context, userEmail string, watch domain.SavedSearch) bool {
	message := WatchConfirmationMessage(watch)
	return d.Send(ctx, userEmail, message, ChannelEmail, SubjectWatchConfirmation)
}

// SendBookingConfirmation emails a booking confirmation.
func (d *Dispatcher) SendBookingConfirmation(ctx context.Context, userEmail string, details BookingDetails) bool {
	message := BookingConfirmationMessage(details)
	return d.Send(ctx, userEmail, message, ChannelEmail, SubjectBookingConfirmation)
}

// SendFlightReminder emails a departure reminder.
func (d *Dispatcher) SendFlightReminder(ctx context.Context, userEmail string, offer domain.FlightOffer, hoursBefore int) bool {
	subject := fmt.Sprintf("✈️ Uçuş Hatırlatması - %d Saat Kaldı", hoursBefore)
	message := FlightReminderMessage(offer, hoursBefore)
	return d.Send(ctx, userEmail, message, ChannelEmail, subject)
}

// SendDealAlert emails a limited-time deal alert.
func (d *Dispatcher) SendDealAlert(ctx context.Context, userEmail string, details DealDetails) bool {
	message := DealAlertMessage(details)
	return d.Send(ctx, userEmail, message, ChannelEmail, SubjectDealAlert)
}
