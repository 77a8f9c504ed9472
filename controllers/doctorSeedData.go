package controllers

import (
	"virtual-healthcare/models"

	"github.com/lib/pq"
)

func slot(day, start, end, display string) models.TimeSlot {
	return models.TimeSlot{Day: day, StartTime: start, EndTime: end, Display: display}
}

// initialDoctors is the bootstrap roster used by the doctor seed endpoint.
func initialDoctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:            1,
			Name:          "Dr. Sarah Haider",
			Specialty:     "Cardiologist",
			Experience:    "15 years",
			Education:     "MD, Harvard Medical School",
			Image:         "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=400&fit=crop&crop=face",
			AvailableDays: pq.StringArray{"Monday", "Wednesday", "Friday"},
			TimeSlots: []models.TimeSlot{
				slot("Monday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Monday", "14:00", "17:00", "2:00 PM - 5:00 PM"),
				slot("Wednesday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Wednesday", "15:00", "17:00", "3:00 PM - 5:00 PM"),
				slot("Friday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Friday", "15:00", "16:00", "3:00 PM - 4:00 PM"),
			},
			ShortBio:        "Specialist in cardiovascular diseases with extensive experience in heart surgery.",
			ConsultationFee: "Rs. 200",
		},
		{
			ID:            2,
			Name:          "Dr. Mustafa Hassan",
			Specialty:     "Neurologist",
			Experience:    "12 years",
			Education:     "MD, Johns Hopkins University",
			Image:         "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop&crop=face",
			AvailableDays: pq.StringArray{"Tuesday", "Thursday", "Saturday"},
			TimeSlots: []models.TimeSlot{
				slot("Tuesday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Tuesday", "14:00", "17:00", "2:00 PM - 5:00 PM"),
				slot("Thursday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Thursday", "14:00", "17:00", "2:00 PM - 5:00 PM"),
				slot("Saturday", "10:00", "13:00", "10:00 AM - 1:00 PM"),
			},
			ShortBio:        "Expert in treating neurological disorders and brain-related conditions.",
			ConsultationFee: "Rs. 180",
		},
		{
			ID:            3,
			Name:          "Dr. Eman Aslam",
			Specialty:     "Pediatrician",
			Experience:    "10 years",
			Education:     "MD, Stanford University",
			Image:         "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=400&fit=crop&crop=face",
			AvailableDays: pq.StringArray{"Monday", "Tuesday", "Thursday"},
			TimeSlots: []models.TimeSlot{
				slot("Monday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Monday", "14:00", "17:00", "2:00 PM - 5:00 PM"),
				slot("Tuesday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Tuesday", "14:00", "17:00", "2:00 PM - 5:00 PM"),
				slot("Thursday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Thursday", "14:00", "17:00", "2:00 PM - 5:00 PM"),
			},
			ShortBio:        "Dedicated to providing comprehensive healthcare for children and adolescents.",
			ConsultationFee: "Rs. 150",
		},
		{
			ID:            4,
			Name:          "Dr. Ahmed Raza",
			Specialty:     "Orthopedic Surgeon",
			Experience:    "18 years",
			Education:     "MD, Mayo Clinic",
			Image:         "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=400&h=400&fit=crop&crop=face",
			AvailableDays: pq.StringArray{"Wednesday", "Friday", "Saturday"},
			TimeSlots: []models.TimeSlot{
				slot("Wednesday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Wednesday", "15:00", "17:00", "3:00 PM - 5:00 PM"),
				slot("Friday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Friday", "15:00", "16:00", "3:00 PM - 4:00 PM"),
				slot("Saturday", "10:00", "13:00", "10:00 AM - 1:00 PM"),
			},
			ShortBio:        "Specializes in joint replacement and sports medicine injuries.",
			ConsultationFee: "Rs. 220",
		},
		{
			ID:            5,
			Name:          "Dr. Aslam Qureshi",
			Specialty:     "Dermatologist",
			Experience:    "8 years",
			Education:     "MD, UCLA Medical School",
			Image:         "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop&crop=face",
			AvailableDays: pq.StringArray{"Monday", "Wednesday", "Friday"},
			TimeSlots: []models.TimeSlot{
				slot("Monday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Monday", "14:00", "17:00", "2:00 PM - 5:00 PM"),
				slot("Wednesday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Wednesday", "15:00", "17:00", "3:00 PM - 5:00 PM"),
				slot("Friday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Friday", "15:00", "16:00", "3:00 PM - 4:00 PM"),
			},
			ShortBio:        "Expert in skin conditions, cosmetic procedures, and dermatological surgery.",
			ConsultationFee: "Rs. 160",
		},
		{
			ID:            6,
			Name:          "Dr. Dawood Khan",
			Specialty:     "General Surgeon",
			Experience:    "14 years",
			Education:     "MD, Yale Medical School",
			Image:         "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=400&h=400&fit=crop&crop=face",
			AvailableDays: pq.StringArray{"Tuesday", "Thursday", "Saturday"},
			TimeSlots: []models.TimeSlot{
				slot("Tuesday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Tuesday", "14:00", "17:00", "2:00 PM - 5:00 PM"),
				slot("Thursday", "09:00", "12:00", "9:00 AM - 12:00 PM"),
				slot("Thursday", "14:00", "17:00", "2:00 PM - 5:00 PM"),
				slot("Saturday", "10:00", "13:00", "10:00 AM - 1:00 PM"),
			},
			ShortBio:        "Skilled in minimally invasive surgical techniques and emergency procedures.",
			ConsultationFee: "Rs. 190",
		},
	}
}
